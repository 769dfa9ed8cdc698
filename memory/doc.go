// Package memory provides minimal conversation state.
//
// Model:
//   - Only text messages are stored (role + content). Tool blocks are
//     transient and never persisted.
//   - Order is preserved; a sliding window bounds how much history is sent
//     to the model.
//   - The CLI persists the transcript as JSON between runs; the web path
//     receives history in each request and keeps nothing.
package memory
