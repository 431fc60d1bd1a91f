// Package render writes portfolio content into named page regions.
//
// Each Render function owns a fixed set of regions and fully replaces their
// content, so calling it twice with the same data is harmless.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alimgiray/gfolio/internal/format"
	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/social"
)

const (
	defaultBio           = "Computer Science student passionate about software development and technology."
	bioEncouragement     = " Always eager to learn new technologies and contribute to meaningful projects."
	defaultDescription   = "A project showcasing programming skills and creativity."
	maxSkills            = 8
	maxProjects          = 6
	maxProjectTopics     = 2
	maxHighlights        = 4
	heroSocialLimit      = 4
	footerSocialLimit    = 5
	minHeroSocialEntries = 2
)

// FallbackBio replaces the bio when the remote data could not be loaded
const FallbackBio = "Computer Science student passionate about software development, algorithms, and creating innovative solutions through code."

// FallbackHighlights replace the highlights list when the remote data could not be loaded
var FallbackHighlights = []string{
	"Computer Science student",
	"Passionate about software development",
	"Always learning new technologies",
	"Open to collaboration opportunities",
}

var fillerHighlights = []string{
	"Active in open source community",
	"Continuous learner in computer science",
}

// RenderAll runs every region renderer for one resolved snapshot
func RenderAll(t Target, snapshot *models.Snapshot, username string, anim Animator) {
	links := social.Extract(snapshot.Profile, username)

	RenderProfile(t, snapshot.Profile, username)
	RenderHeroSocial(t, links)
	RenderContactSocial(t, links)
	RenderFooterLinks(t, links)
	RenderStats(t, snapshot, anim)
	RenderSkills(t, snapshot.Repos)
	RenderProjects(t, snapshot.Repos)
	RenderHighlights(t, snapshot.Profile, snapshot.Repos)
}

// RenderFallback overwrites only the bio and highlights with static text
func RenderFallback(t Target) {
	t.SetText(RegionBio, FallbackBio)
	t.SetHTML(RegionHighlights, listItems(FallbackHighlights))
}

// Bio returns the profile bio or the default sentence with its encouragement clause
func Bio(profile *models.Profile) string {
	if profile.Bio != "" {
		return profile.Bio
	}
	return defaultBio + bioEncouragement
}

// RenderProfile writes the avatars, names, bio, optional location and email
// blocks and the contact GitHub link.
func RenderProfile(t Target, profile *models.Profile, username string) {
	t.SetAttr(RegionAvatar, "src", profile.AvatarURL)
	t.SetAttr(RegionBrandAvatar, "src", profile.AvatarURL)

	name := profile.DisplayName()
	t.SetText(RegionFullName, name)
	t.SetText(RegionName, name)
	t.SetText(RegionBio, Bio(profile))

	if profile.Location != "" {
		t.Show(RegionLocationDetail)
		t.SetText(RegionLocationText, profile.Location)
	}

	if profile.Email != "" {
		mailto := "mailto:" + profile.Email
		t.Show(RegionEmailDetail)
		t.SetAttr(RegionEmailLink, "href", mailto)
		t.SetText(RegionEmailLink, profile.Email)

		t.Show(RegionEmailMethod)
		t.SetAttr(RegionContactEmailLink, "href", mailto)
		t.SetText(RegionContactEmailLink, profile.Email)
	}

	t.SetAttr(RegionContactGitHub, "href", social.GitHubURL(username))
}

// RenderStats animates the follower, public repository and total star counters.
// Total stars count every repository, including ones hidden from Projects.
func RenderStats(t Target, snapshot *models.Snapshot, anim Animator) {
	stats := []struct {
		key    string
		target int
	}{
		{CounterFollowers, snapshot.Profile.Followers},
		{CounterPublicRepos, snapshot.Profile.PublicRepos},
		{CounterTotalStars, snapshot.TotalStars()},
	}

	for _, stat := range stats {
		region := CounterRegion(stat.key)
		anim.Animate(stat.key, stat.target, func(value int) {
			t.SetText(region, format.FormatNumber(value))
		})
	}
}

// TopLanguages returns at most eight languages, most used first
func TopLanguages(repos []*models.Repository) []models.LanguageCount {
	counts := models.CountLanguages(repos)
	if len(counts) > maxSkills {
		counts = counts[:maxSkills]
	}
	return counts
}

// RenderSkills writes one colored tag per top language
func RenderSkills(t Target, repos []*models.Repository) {
	var b strings.Builder
	for _, lc := range TopLanguages(repos) {
		b.WriteString(languageTag("skill-tag", lc.Language))
	}
	t.SetHTML(RegionSkills, b.String())
}

func languageTag(class, lang string) string {
	return fmt.Sprintf(`<span class="%s"><span class="dot" style="background-color:%s"></span>%s</span>`,
		class, format.LanguageColor(lang), format.EscapeHTML(lang))
}

// FeaturedProjects drops forks and archived repositories and returns the
// six highest-scoring ones.
func FeaturedProjects(repos []*models.Repository) []*models.Repository {
	featured := make([]*models.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.IsFeaturable() {
			featured = append(featured, repo)
		}
	}

	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].Score() > featured[j].Score()
	})

	if len(featured) > maxProjects {
		featured = featured[:maxProjects]
	}
	return featured
}

// RenderProjects writes one card per featured project
func RenderProjects(t Target, repos []*models.Repository) {
	var b strings.Builder
	for _, repo := range FeaturedProjects(repos) {
		b.WriteString(projectCard(repo))
	}
	t.SetHTML(RegionProjectsGrid, b.String())
}

func projectCard(repo *models.Repository) string {
	var tags strings.Builder
	if repo.Language != "" {
		tags.WriteString(languageTag("tag", repo.Language))
	}
	topics := repo.Topics
	if len(topics) > maxProjectTopics {
		topics = topics[:maxProjectTopics]
	}
	for _, topic := range topics {
		fmt.Fprintf(&tags, `<span class="tag">%s</span>`, format.EscapeHTML(topic))
	}

	description := repo.Description
	if description == "" {
		description = defaultDescription
	}

	var demo string
	if repo.Homepage != "" {
		demo = fmt.Sprintf(`<a class="btn outline small live-demo" href="%s" target="_blank" rel="noopener"><i class="fas fa-external-link-alt"></i> Live Demo</a>`,
			format.EscapeHTML(repo.Homepage))
	}

	return fmt.Sprintf(`<div class="card repo">
<div class="repo-top">
<h3>%s</h3>
<div class="repo-meta"><span class="stars" title="Stars">⭐ %d</span><span class="forks" title="Forks">🍴 %d</span></div>
</div>
<p class="desc">%s</p>
<div class="tags">%s</div>
<div class="actions"><a class="btn small" href="%s" target="_blank" rel="noopener"><i class="fab fa-github"></i> View Code</a>%s</div>
</div>
`,
		format.EscapeHTML(repo.Name),
		repo.StargazersCount,
		repo.ForksCount,
		format.EscapeHTML(description),
		tags.String(),
		format.EscapeHTML(repo.HTMLURL),
		demo,
	)
}

// Highlights lists accomplishments that pass their thresholds followed by
// two fixed statements, capped at four entries.
func Highlights(profile *models.Profile, repos []*models.Repository) []string {
	var highlights []string

	if len(repos) > 5 {
		highlights = append(highlights, fmt.Sprintf("%d+ repositories created", len(repos)))
	}
	if profile.Followers > 10 {
		highlights = append(highlights, fmt.Sprintf("%d GitHub followers", profile.Followers))
	}

	snapshot := models.Snapshot{Profile: profile, Repos: repos}
	if total := snapshot.TotalStars(); total > 0 {
		highlights = append(highlights, fmt.Sprintf("%d total stars earned", total))
	}

	if languages := len(models.CountLanguages(repos)); languages > 3 {
		highlights = append(highlights, fmt.Sprintf("%d programming languages used", languages))
	}

	highlights = append(highlights, fillerHighlights...)
	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

// RenderHighlights writes the highlights list
func RenderHighlights(t Target, profile *models.Profile, repos []*models.Repository) {
	t.SetHTML(RegionHighlights, listItems(Highlights(profile, repos)))
}

func listItems(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "<li>%s</li>", format.EscapeHTML(item))
	}
	return b.String()
}

// RenderHeroSocial writes the first four links. With fewer than two links the
// region keeps the page's static default.
func RenderHeroSocial(t Target, links []models.SocialLink) {
	if len(links) < minHeroSocialEntries {
		return
	}
	var b strings.Builder
	for _, link := range prefix(links, 0, heroSocialLimit) {
		fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener" title="%s"><i class="%s"></i> %s</a>`,
			format.EscapeHTML(link.URL), format.EscapeHTML(link.Network), link.Icon, format.EscapeHTML(link.Network))
	}
	t.SetHTML(RegionHeroSocial, b.String())
}

// RenderContactSocial writes links two to four as buttons
func RenderContactSocial(t Target, links []models.SocialLink) {
	var b strings.Builder
	for _, link := range prefix(links, 1, heroSocialLimit) {
		fmt.Fprintf(&b, `<a class="btn outline small" href="%s" target="_blank" rel="noopener"><i class="%s"></i> %s</a>`,
			format.EscapeHTML(link.URL), link.Icon, format.EscapeHTML(link.Network))
	}
	t.SetHTML(RegionContactSocial, b.String())
}

// RenderFooterLinks writes the first five links
func RenderFooterLinks(t Target, links []models.SocialLink) {
	var b strings.Builder
	for _, link := range prefix(links, 0, footerSocialLimit) {
		fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener">%s</a>`,
			format.EscapeHTML(link.URL), format.EscapeHTML(link.Network))
	}
	t.SetHTML(RegionFooterLinks, b.String())
}

// prefix is links[from:to] clamped to the slice bounds
func prefix(links []models.SocialLink, from, to int) []models.SocialLink {
	if to > len(links) {
		to = len(links)
	}
	if from >= to {
		return nil
	}
	return links[from:to]
}
