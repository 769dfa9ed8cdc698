package githubtools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type RepoInfoInput struct {
	RepoURL string `json:"repo_url" jsonschema_description:"Full GitHub repository URL, e.g. https://github.com/owner/name."`
}

var RepoInfoInputSchema = GenerateSchema[RepoInfoInput]()

func (c *Client) repoInfoDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "repo_info",
		Description: "Get general information about a GitHub repository: description, language, stars, forks, size, default branch, topics and license.",
		InputSchema: RepoInfoInputSchema,
		Function:    c.RepoInfo,
	}
}

// RepoInfo summarises the repository metadata endpoint as a text block.
func (c *Client) RepoInfo(ctx context.Context, input json.RawMessage) (string, error) {
	var in RepoInfoInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	owner, name, ok := ParseRepoURL(in.RepoURL)
	if !ok {
		return invalidURLMessage, nil
	}

	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return fmt.Sprintf("Failed to get repository info: %v", err), nil
	}

	// The API reports size in KB.
	sizeMB := float64(repo.GetSize()) / 1024

	topics := "No topics"
	if len(repo.Topics) > 0 {
		topics = strings.Join(repo.Topics, ", ")
	}

	license := "No license available"
	if l := repo.GetLicense(); l != nil && l.GetName() != "" {
		license = l.GetName()
	}

	return fmt.Sprintf(
		"Repository: %s\n"+
			"Owner: %s\n"+
			"Description: %s\n"+
			"Size: %.1fMB\n"+
			"Stars: %d\n"+
			"Forks: %d\n"+
			"Open Issues: %d\n"+
			"Pull Requests: https://github.com/%s/%s/pulls\n"+
			"Language: %s\n"+
			"Created: %s\n"+
			"Last Updated: %s\n"+
			"Default Branch: %s\n"+
			"Visibility: %s\n"+
			"Topics: %s\n"+
			"License: %s",
		repo.GetFullName(),
		repo.GetOwner().GetLogin(),
		repo.GetDescription(),
		sizeMB,
		repo.GetStargazersCount(),
		repo.GetForksCount(),
		repo.GetOpenIssuesCount(),
		owner, name,
		repo.GetLanguage(),
		repo.GetCreatedAt().Format(time.RFC3339),
		repo.GetUpdatedAt().Format(time.RFC3339),
		repo.GetDefaultBranch(),
		repo.GetVisibility(),
		topics,
		license,
	), nil
}
