// Package githubtools defines the repository-inspection tools exposed to the
// model.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Tools: repo_info, repo_structure, file_content, issues, pull_requests.
//
// Failure contract: a malformed repository URL or a non-2xx GitHub response is
// reported as ordinary tool output text, not as a Go error. The model reads
// failures the same way it reads results; the error return is reserved for
// input-decoding faults.
package githubtools
