// Package format turns raw profile and repository values into display text.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// CounterDuration is how long a stat counter takes to reach its target
const CounterDuration = 1200 * time.Millisecond

const defaultLanguageColor = "#34495e"

var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#178600",
	"Go":         "#00ADD8",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Shell":      "#89e051",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Kotlin":     "#A97BFF",
	"Dart":       "#00B4AB",
	"Rust":       "#dea584",
	"Swift":      "#F05138",
	"React":      "#61dafb",
	"Vue":        "#4fc08d",
	"Node.js":    "#339933",
}

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	htmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// FormatNumber renders n with thousands separators, e.g. 1234567 -> 1,234,567
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// LanguageColor returns the display color for a language or framework name
func LanguageColor(lang string) string {
	if color, ok := languageColors[lang]; ok {
		return color
	}
	return defaultLanguageColor
}

// EscapeHTML escapes & < > " and ' so s can be placed in markup or a
// quoted attribute.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML and nothing else
func UnescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}

// CounterProgress is the elapsed fraction of CounterDuration, clamped to [0,1]
func CounterProgress(elapsed time.Duration) float64 {
	p := float64(elapsed) / float64(CounterDuration)
	return math.Max(0, math.Min(1, p))
}

// CounterValue is the counter value elapsed into the animation, following a
// cubic ease-out: floor(target * (1 - (1-p)^3)).
func CounterValue(target int, elapsed time.Duration) int {
	p := CounterProgress(elapsed)
	eased := 1 - math.Pow(1-p, 3)
	return int(math.Floor(float64(target) * eased))
}
