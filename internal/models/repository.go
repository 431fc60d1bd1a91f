package models

import "time"

// Repository represents one public repository of the portfolio owner
type Repository struct {
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Language        string    `json:"language,omitempty"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at"`
	Archived        bool      `json:"archived"`
	Fork            bool      `json:"fork"`
	Homepage        string    `json:"homepage,omitempty"`
	Topics          []string  `json:"topics,omitempty"`
	HTMLURL         string    `json:"html_url"`
}

// IsFeaturable reports whether the repository may appear as a project card
func (r *Repository) IsFeaturable() bool {
	return !r.Fork && !r.Archived
}

// Score ranks featured projects. Stars dominate; the update time in epoch
// seconds scaled down by 1e9 only breaks near-ties.
func (r *Repository) Score() float64 {
	return float64(r.StargazersCount*10) + float64(r.UpdatedAt.Unix())/1e9
}
