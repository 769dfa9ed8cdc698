package githubtools

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// listPageSize caps issue and pull request listings so tool results stay
// small enough for the model's context.
const listPageSize = 10

// ToolDefinition describes one tool exposed to the model.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
	Function    func(ctx context.Context, input json.RawMessage) (string, error)
}

// Client wraps a GitHub API client for one chat turn. The web path builds a
// fresh Client per request from the request's token; the CLI builds one per
// process run.
type Client struct {
	gh *github.Client
}

// New returns a Client authenticated with token, or an anonymous
// (rate-limited) one when token is empty.
func New(ctx context.Context, token string) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}
	return &Client{gh: github.NewClient(hc)}
}

// NewFromGitHub wraps an existing GitHub client. Used by tests to point the
// tools at a fake API server.
func NewFromGitHub(gh *github.Client) *Client {
	return &Client{gh: gh}
}

// Registry returns all tool definitions wired for the agent.
func (c *Client) Registry() []ToolDefinition {
	return []ToolDefinition{
		c.repoInfoDefinition(),
		c.repoStructureDefinition(),
		c.fileContentDefinition(),
		c.issuesDefinition(),
		c.pullRequestsDefinition(),
	}
}
