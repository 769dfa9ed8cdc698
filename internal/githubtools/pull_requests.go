package githubtools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v84/github"
)

type PullRequestsInput struct {
	RepoURL string `json:"repo_url" jsonschema_description:"Full GitHub repository URL, e.g. https://github.com/owner/name."`
	State   string `json:"state,omitempty" jsonschema_description:"Pull request state filter: open, closed, or all (default open)."`
}

var PullRequestsInputSchema = GenerateSchema[PullRequestsInput]()

func (c *Client) pullRequestsDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "pull_requests",
		Description: "List pull requests of a GitHub repository. State can be 'open', 'closed', or 'all'.",
		InputSchema: PullRequestsInputSchema,
		Function:    c.PullRequests,
	}
}

// PullRequests lists up to listPageSize pull requests for the requested state.
func (c *Client) PullRequests(ctx context.Context, input json.RawMessage) (string, error) {
	var in PullRequestsInput
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

	prs, _, err := c.gh.PullRequests.List(ctx, owner, name, &github.PullRequestListOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: listPageSize},
	})
	if err != nil {
		return fmt.Sprintf("Failed to get pull requests: %v", err), nil
	}
	if len(prs) == 0 {
		return fmt.Sprintf("No %s pull requests found.", state), nil
	}

	var entries []string
	for _, pr := range prs {
		entries = append(entries, fmt.Sprintf(
			"#%d - %s\nState: %s\nCreated: %s\nURL: %s\n",
			pr.GetNumber(),
			pr.GetTitle(),
			pr.GetState(),
			pr.GetCreatedAt().Format(time.RFC3339),
			pr.GetHTMLURL(),
		))
	}
	return strings.Join(entries, "\n"), nil
}
