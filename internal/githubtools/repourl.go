package githubtools

import "regexp"

// repoURLPattern matches https, ssh and bare github.com repository URLs, with
// an optional trailing .git.
var repoURLPattern = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)

// invalidURLMessage is returned to the model as ordinary tool output when a
// repository URL does not parse.
const invalidURLMessage = "Invalid GitHub URL format."

// ParseRepoURL extracts owner and repository name from a GitHub URL.
func ParseRepoURL(rawURL string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
