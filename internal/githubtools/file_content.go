package githubtools

import (
	"context"
	"encoding/json"
	"fmt"
)

type FileContentInput struct {
	RepoURL  string `json:"repo_url" jsonschema_description:"Full GitHub repository URL, e.g. https://github.com/owner/name."`
	FilePath string `json:"file_path" jsonschema_description:"Path of the file within the repository, e.g. README.md or cmd/server/main.go."`
}

var FileContentInputSchema = GenerateSchema[FileContentInput]()

func (c *Client) fileContentDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "file_content",
		Description: "Get the content of a specific file within a GitHub repository.",
		InputSchema: FileContentInputSchema,
		Function:    c.FileContent,
	}
}

// FileContent fetches one file via the contents endpoint and decodes its
// base64 payload. Paths that resolve to anything other than a regular file
// (directories, symlinks, submodules) are reported as failure text.
func (c *Client) FileContent(ctx context.Context, input json.RawMessage) (string, error) {
	var in FileContentInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	owner, name, ok := ParseRepoURL(in.RepoURL)
	if !ok {
		return invalidURLMessage, nil
	}

	fc, _, _, err := c.gh.Repositories.GetContents(ctx, owner, name, in.FilePath, nil)
	if err != nil {
		return fmt.Sprintf("Failed to get file content: %v", err), nil
	}
	// A nil content means the endpoint returned a directory listing; a
	// non-"file" type is a symlink or submodule entry.
	if fc == nil || fc.GetType() != "file" {
		return "The path does not point to a file", nil
	}

	content, err := fc.GetContent()
	if err != nil {
		return fmt.Sprintf("Failed to get file content: %v", err), nil
	}
	return fmt.Sprintf("File: %s\n\n%s", in.FilePath, content), nil
}
