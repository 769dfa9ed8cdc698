// Package server exposes the agent over HTTP.
//
// Surface:
//   - POST /api/chat: one chat turn; tokens travel in the request body, so
//     every request gets fresh model and GitHub clients and no state is
//     shared between requests.
//   - GET /: static chat UI.
//
// The API is permissive about origins; the UI is expected to be served from
// anywhere during development.
package server
