package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatNumber(tc.in))
		})
	}
}

func TestLanguageColor(t *testing.T) {
	assert.Equal(t, "#00ADD8", LanguageColor("Go"))
	assert.Equal(t, "#f34b7d", LanguageColor("C++"))
	assert.Equal(t, "#34495e", LanguageColor("COBOL"))
	assert.Equal(t, "#34495e", LanguageColor(""))
}

func TestEscapeHTML(t *testing.T) {
	raw := `<b>&"'`

	escaped := EscapeHTML(raw)

	assert.Equal(t, "&lt;b&gt;&amp;&quot;&#39;", escaped)
	for _, raw := range []string{"<", ">", `"`, "'"} {
		assert.NotContains(t, escaped, raw)
	}
	// Every & left in the output starts an entity
	assert.Equal(t, strings.Count(escaped, "&"), strings.Count(escaped, ";"))
	assert.Equal(t, raw, UnescapeHTML(escaped))
}

func TestEscapeHTMLLeavesPlainTextAlone(t *testing.T) {
	assert.Equal(t, "plain text 123", EscapeHTML("plain text 123"))
}

func TestCounterValue(t *testing.T) {
	testCases := []struct {
		name    string
		target  int
		elapsed time.Duration
		want    int
	}{
		{"start", 1000, 0, 0},
		{"before start", 1000, -time.Second, 0},
		{"halfway", 1000, 600 * time.Millisecond, 875},
		{"done", 1000, CounterDuration, 1000},
		{"past the end", 1000, 5 * time.Second, 1000},
		{"zero target", 0, 600 * time.Millisecond, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CounterValue(tc.target, tc.elapsed))
		})
	}
}

func TestCounterValueIsMonotonic(t *testing.T) {
	prev := 0
	for ms := 0; ms <= 1300; ms += 16 {
		v := CounterValue(257, time.Duration(ms)*time.Millisecond)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Equal(t, 257, prev)
}
