package render

// Region names one insertion point on the portfolio page
type Region string

const (
	RegionAvatar       Region = "avatar"
	RegionBrandAvatar  Region = "brand-avatar"
	RegionFullName     Region = "full-name"
	RegionName         Region = "name"
	RegionBio          Region = "bio"
	RegionProjectsGrid Region = "projects-grid"
	RegionHighlights   Region = "highlights"
	RegionSkills       Region = "programming-languages"

	RegionHeroSocial    Region = "social-links"
	RegionContactSocial Region = "contact-social"
	RegionFooterLinks   Region = "footer-links"
	RegionContactGitHub Region = "contact-github"

	RegionLocationDetail   Region = "location-detail"
	RegionLocationText     Region = "location-text"
	RegionEmailDetail      Region = "email-detail"
	RegionEmailLink        Region = "email-link"
	RegionEmailMethod      Region = "email-method"
	RegionContactEmailLink Region = "contact-email-link"
)

// Counter keys, as carried by the page's data-counter attributes
const (
	CounterFollowers   = "followers"
	CounterPublicRepos = "public-repos"
	CounterTotalStars  = "total-stars"
)

// CounterRegion is the region holding the counter with the given key
func CounterRegion(key string) Region {
	return Region("counter:" + key)
}
