// Package social derives the ordered list of contact links shown on the page.
//
// Order matters: the hero, contact and footer regions each take a different
// prefix of the list.
package social

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/goware/urlx"

	"github.com/alimgiray/gfolio/internal/models"
)

var (
	blogSeparators = regexp.MustCompile(`[\s,;|]+`)
	httpScheme     = regexp.MustCompile(`(?i)^https?://`)
)

type network struct {
	name  string
	label string
	icon  string
	match func(host string) bool
}

func contains(part string) func(string) bool {
	return func(host string) bool { return strings.Contains(host, part) }
}

func exactly(name string) func(string) bool {
	return func(host string) bool { return host == name }
}

// networks is checked top to bottom; the first match wins
var networks = []network{
	{"LinkedIn", "LinkedIn Profile", "fab fa-linkedin", contains("linkedin.com")},
	{"Twitter", "Twitter Profile", "fab fa-twitter", func(h string) bool { return contains("twitter.com")(h) || h == "x.com" }},
	{"Instagram", "Instagram", "fab fa-instagram", contains("instagram.com")},
	{"YouTube", "YouTube Channel", "fab fa-youtube", contains("youtube.com")},
	{"Medium", "Medium Blog", "fab fa-medium", contains("medium.com")},
	{"Dev.to", "Dev.to Profile", "fab fa-dev", exactly("dev.to")},
	{"LeetCode", "LeetCode Profile", "fas fa-code", contains("leetcode.com")},
	{"Stack Overflow", "Stack Overflow", "fab fa-stack-overflow", contains("stackoverflow.com")},
}

var website = network{name: "Website", label: "Personal Website", icon: "fas fa-globe"}

// Extract builds the social links for profile. username is the configured
// portfolio owner and fixes the GitHub URL; the label uses the profile login.
func Extract(profile *models.Profile, username string) []models.SocialLink {
	links := []models.SocialLink{{
		Network: "GitHub",
		URL:     GitHubURL(username),
		Label:   "@" + profile.Login,
		Icon:    "fab fa-github",
	}}

	if profile.Email != "" {
		links = append(links, models.SocialLink{
			Network: "Email",
			URL:     "mailto:" + profile.Email,
			Label:   profile.Email,
			Icon:    "fas fa-envelope",
		})
	}

	if profile.TwitterUsername != "" {
		links = append(links, models.SocialLink{
			Network: "Twitter",
			URL:     "https://twitter.com/" + profile.TwitterUsername,
			Label:   "@" + profile.TwitterUsername,
			Icon:    "fab fa-twitter",
		})
	}

	for _, token := range SplitBlog(profile.Blog) {
		normalized, host, ok := NormalizeURL(token)
		if !ok {
			continue
		}
		n := classify(host)
		links = append(links, models.SocialLink{
			Network: n.name,
			URL:     normalized,
			Label:   n.label,
			Icon:    n.icon,
		})
	}

	return links
}

// GitHubURL is the public profile URL for username
func GitHubURL(username string) string {
	return fmt.Sprintf("https://github.com/%s", username)
}

// SplitBlog splits the free-text blog field into non-empty URL candidates
func SplitBlog(blog string) []string {
	var tokens []string
	for _, token := range blogSeparators.Split(blog, -1) {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// NormalizeURL prefixes https:// when the token has no http(s) scheme and
// reports whether the result is a URL a browser would accept: a non-empty
// host free of forbidden code points and a port no larger than 65535. The
// returned URL is the prefixed token, not a re-serialized form.
func NormalizeURL(token string) (normalized, host string, ok bool) {
	u := strings.TrimSpace(token)
	if u == "" {
		return "", "", false
	}
	if !httpScheme.MatchString(u) {
		u = "https://" + u
	}

	parsed, err := url.Parse(u)
	if err != nil {
		return "", "", false
	}
	// An empty port ("host:") means the default one
	parsed.Host = strings.TrimSuffix(parsed.Host, ":")

	hostname, port, err := urlx.SplitHostPort(parsed)
	if err != nil || !validPort(port) || !validHost(hostname) {
		return "", "", false
	}

	return u, strings.ToLower(strings.Trim(hostname, "[]")), true
}

// forbiddenHostChars are the characters a browser refuses in a domain
const forbiddenHostChars = "\x00\t\n\r #%/:<>?@[\\]^|\x7f"

func validHost(host string) bool {
	if host == "" {
		return false
	}
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return net.ParseIP(host[1:len(host)-1]) != nil
	}
	for _, r := range host {
		if r < 0x20 || strings.ContainsRune(forbiddenHostChars, r) {
			return false
		}
	}
	return true
}

func validPort(port string) bool {
	if port == "" {
		return true
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return false
		}
	}
	_, err := strconv.ParseUint(port, 10, 16)
	return err == nil
}

// classify maps a host to a known network, defaulting to Website
func classify(host string) network {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	for _, n := range networks {
		if n.match(host) {
			return n
		}
	}
	return website
}

// NetworkName is classify for callers that only need the display name
func NetworkName(host string) string {
	return classify(host).name
}
