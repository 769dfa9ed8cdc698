package githubtools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type RepoStructureInput struct {
	RepoURL string `json:"repo_url" jsonschema_description:"Full GitHub repository URL, e.g. https://github.com/owner/name."`
}

var RepoStructureInputSchema = GenerateSchema[RepoStructureInput]()

// excludedTreePaths filters noise entries out of the listing; matched as
// substrings, mirroring vendored/dot directories at any depth.
var excludedTreePaths = []string{".git/", "node_modules/", "__pycache__/"}

func (c *Client) repoStructureDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "repo_structure",
		Description: "List the full directory structure of a GitHub repository (files and directories on the default branch).",
		InputSchema: RepoStructureInputSchema,
		Function:    c.RepoStructure,
	}
}

// RepoStructure renders the recursive git tree of the repository, trying the
// main branch first and falling back to master.
func (c *Client) RepoStructure(ctx context.Context, input json.RawMessage) (string, error) {
	var in RepoStructureInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	owner, name, ok := ParseRepoURL(in.RepoURL)
	if !ok {
		return invalidURLMessage, nil
	}

	tree, _, err := c.gh.Git.GetTree(ctx, owner, name, "main", true)
	if err != nil {
		tree, _, err = c.gh.Git.GetTree(ctx, owner, name, "master", true)
		if err != nil {
			return fmt.Sprintf("Failed to get repository structure: %v", err), nil
		}
	}

	var lines []string
	for _, entry := range tree.Entries {
		path := entry.GetPath()
		if isExcludedTreePath(path) {
			continue
		}
		marker := "📄"
		if entry.GetType() == "tree" {
			marker = "📁"
		}
		lines = append(lines, marker+" "+path)
	}
	return strings.Join(lines, "\n"), nil
}

func isExcludedTreePath(path string) bool {
	for _, excluded := range excludedTreePaths {
		if strings.Contains(path, excluded) {
			return true
		}
	}
	return false
}
