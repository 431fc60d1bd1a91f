package models

// Profile is the subset of a GitHub user the portfolio page renders
type Profile struct {
	Login           string `json:"login"`
	Name            string `json:"name,omitempty"`
	Bio             string `json:"bio,omitempty"`
	AvatarURL       string `json:"avatar_url"`
	Followers       int    `json:"followers"`
	PublicRepos     int    `json:"public_repos"`
	Location        string `json:"location,omitempty"`
	Email           string `json:"email,omitempty"`
	TwitterUsername string `json:"twitter_username,omitempty"`
	// Blog is free text and may hold several URLs
	Blog string `json:"blog,omitempty"`
}

// DisplayName returns the name, falling back to the login
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
