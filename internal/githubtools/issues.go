package githubtools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v84/github"
)

type IssuesInput struct {
	RepoURL string `json:"repo_url" jsonschema_description:"Full GitHub repository URL, e.g. https://github.com/owner/name."`
	State   string `json:"state,omitempty" jsonschema_description:"Issue state filter: open, closed, or all (default open)."`
}

var IssuesInputSchema = GenerateSchema[IssuesInput]()

func (c *Client) issuesDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "issues",
		Description: "List issues of a GitHub repository. State can be 'open', 'closed', or 'all'. Pull requests are excluded.",
		InputSchema: IssuesInputSchema,
		Function:    c.Issues,
	}
}

// Issues lists up to listPageSize issues for the requested state. The issues
// endpoint also returns pull requests; those are skipped.
func (c *Client) Issues(ctx context.Context, input json.RawMessage) (string, error) {
	var in IssuesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	owner, name, ok := ParseRepoURL(in.RepoURL)
	if !ok {
		return invalidURLMessage, nil
	}

	state := in.State
	if state == "" {
		state = "open"
	}

	issues, _, err := c.gh.Issues.ListByRepo(ctx, owner, name, &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: listPageSize},
	})
	if err != nil {
		return fmt.Sprintf("Failed to get issues: %v", err), nil
	}
	if len(issues) == 0 {
		return fmt.Sprintf("No %s issues found.", state), nil
	}

	var entries []string
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}
		entries = append(entries, fmt.Sprintf(
			"#%d - %s\nState: %s\nCreated: %s\nURL: %s\n",
			issue.GetNumber(),
			issue.GetTitle(),
			issue.GetState(),
			issue.GetCreatedAt().Format(time.RFC3339),
			issue.GetHTMLURL(),
		))
	}
	if len(entries) == 0 {
		return fmt.Sprintf("No %s issues found (excluding PRs).", state), nil
	}
	return strings.Join(entries, "\n"), nil
}
