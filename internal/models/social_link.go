package models

// SocialLink is a renderable contact entry derived from a Profile
type SocialLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
	Label   string `json:"label"`
	Icon    string `json:"icon"`
}
