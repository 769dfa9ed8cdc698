// Package agent coordinates message exchange with the Anthropic Messages API
// and dispatches GitHub tool calls.
//
// Invariant:
//   - tool_use and the corresponding tool_result are kept adjacent within a
//     turn to preserve execution context and simplify follow-up reasoning.
//
// Flow:
//
//	user(text) -> assistant(tool_use) -> user(tool_result) -> assistant(text)
//
// Transient API errors (rate limit, overloaded) are retried with bounded
// backoff; a step cap bounds the tool loop.
package agent
