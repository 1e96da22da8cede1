package domain

// AccountRepos holds an authenticated user's identity and their non-archived
// repositories as "owner/name" strings, most recently updated first.
type AccountRepos struct {
	Username     string   `json:"username"`
	Repositories []string `json:"repositories"`
}
