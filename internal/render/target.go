package render

import (
	"html/template"
	"sync"

	"github.com/alimgiray/gfolio/internal/format"
)

// Target receives rendered content for page regions. Every write replaces
// what the region held before.
type Target interface {
	// SetText stores plain text; it is escaped before it reaches markup.
	SetText(region Region, text string)
	// SetHTML stores markup that the caller has already escaped.
	SetHTML(region Region, markup string)
	// SetAttr sets one attribute (src, href) of the region's element.
	SetAttr(region Region, name, value string)
	// Show reveals a region that the page hides by default.
	Show(region Region)
}

type regionState struct {
	html    string
	written bool
	attrs   map[string]string
	visible bool
}

// Page is a Target that keeps every region in memory for a template to read.
// It is safe for concurrent use.
type Page struct {
	mu      sync.RWMutex
	regions map[Region]*regionState
}

func NewPage() *Page {
	return &Page{regions: make(map[Region]*regionState)}
}

func (p *Page) state(region Region) *regionState {
	s, ok := p.regions[region]
	if !ok {
		s = &regionState{attrs: make(map[string]string)}
		p.regions[region] = s
	}
	return s
}

func (p *Page) SetText(region Region, text string) {
	p.SetHTML(region, format.EscapeHTML(text))
}

func (p *Page) SetHTML(region Region, markup string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state(region)
	s.html = markup
	s.written = true
}

func (p *Page) SetAttr(region Region, name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state(region).attrs[name] = value
}

func (p *Page) Show(region Region) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state(region).visible = true
}

// HTML returns the region's markup, or fallback when nothing was rendered.
// Templates call it as {{.HTML "bio" "default text"}}.
func (p *Page) HTML(region Region, fallback string) template.HTML {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if s, ok := p.regions[region]; ok && s.written {
		return template.HTML(s.html)
	}
	return template.HTML(fallback)
}

// Counter returns the rendered counter value for key, or "0"
func (p *Page) Counter(key string) template.HTML {
	return p.HTML(CounterRegion(key), "0")
}

// Attr returns an attribute value, or fallback when unset
func (p *Page) Attr(region Region, name, fallback string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if s, ok := p.regions[region]; ok {
		if v, ok := s.attrs[name]; ok {
			return v
		}
	}
	return fallback
}

// Visible reports whether Show was called for region
func (p *Page) Visible(region Region) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.regions[region]
	return ok && s.visible
}

// Written reports whether region received any content
func (p *Page) Written(region Region) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.regions[region]
	return ok && s.written
}
