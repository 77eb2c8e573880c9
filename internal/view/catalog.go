// Package view models the case-study presentation pipeline: panel
// activation, the modal view model with its section rules, the two
// design-rationale diagram variants, and the anchored popover positioner.
// It holds no rendering concerns, only the state and geometry a renderer
// consumes.
package view

import "strings"

// Section is one entry of a modal's ordered content. Exactly one of
// Paragraph, List, Arch, or Diagram is normally set, but nothing enforces
// that; renderers emit whatever is present.
type Section struct {
	Heading   string
	Paragraph string
	List      []string
	Arch      bool   // static architecture illustration
	Diagram   string // key into the diagram config set
}

type Modal struct {
	Title    string
	Lead     string
	Tags     []string
	Sections []Section
}

type Case struct {
	Pill    string
	Title   string
	Summary string
	Meta    []string
	Modal   Modal
}

// RenderedSection carries the per-section expand state on top of the
// authored content.
type RenderedSection struct {
	Section
	Collapsible bool
	Collapsed   bool
}

// ActiveCase is the fully-resolved modal state for the selected case study.
type ActiveCase struct {
	Key      string
	Title    string
	Lead     string
	Tags     []string
	Sections []RenderedSection
	ScrollTop int
}

// reservedHeading names a legacy section kind that is filtered out of
// every rendered modal.
const reservedHeading = "project basics"

var collapsibleHeadings = map[string]bool{
	"Key Design Decisions":                 true,
	"What Was Intentionally Not Automated": true,
	"Operational Readiness":                true,
}

// Catalog holds the case-study records and the single active selection.
type Catalog struct {
	cases    map[string]Case
	diagrams map[string]DiagramConfig

	reducedMotion bool
	hoverCapable  bool

	active      *ActiveCase
	mapDiagrams []*MapDiagram
	tabDiagrams []*TabDiagram
}

type CatalogOption func(*Catalog)

// WithReducedMotion suppresses transition styling on everything the
// catalog produces; selection logic is unchanged.
func WithReducedMotion() CatalogOption {
	return func(c *Catalog) { c.reducedMotion = true }
}

// WithoutHover marks the input device as hover-incapable, which disables
// hover activation on map-variant diagrams.
func WithoutHover() CatalogOption {
	return func(c *Catalog) { c.hoverCapable = false }
}

func NewCatalog(cases map[string]Case, diagrams map[string]DiagramConfig, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		cases:        cases,
		diagrams:     diagrams,
		hoverCapable: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate selects the case study under key, fully replacing any previous
// selection. An unknown key is a silent no-op, a documented tolerance for
// stale keys. Activation resets scroll, clears any pinned diagram node,
// and rebuilds the diagram instances for the new section list.
func (c *Catalog) Activate(key string) {
	data, ok := c.cases[key]
	if !ok {
		return
	}

	modal := data.Modal

	title := modal.Title
	if title == "" {
		title = data.Title
	}
	lead := modal.Lead
	if lead == "" {
		lead = data.Summary
	}

	sections := make([]RenderedSection, 0, len(modal.Sections))
	c.mapDiagrams = nil
	c.tabDiagrams = nil

	for _, sec := range modal.Sections {
		if strings.ToLower(sec.Heading) == reservedHeading {
			continue
		}
		collapsible := collapsibleHeadings[sec.Heading]
		sections = append(sections, RenderedSection{
			Section:     sec,
			Collapsible: collapsible,
			Collapsed:   collapsible,
		})
		if sec.Diagram == "" {
			continue
		}
		cfg, ok := c.diagrams[sec.Diagram]
		if !ok {
			continue
		}
		if sec.Diagram == MapDiagramKey {
			c.mapDiagrams = append(c.mapDiagrams, NewMapDiagram(cfg, c.hoverCapable, c.reducedMotion))
		} else {
			c.tabDiagrams = append(c.tabDiagrams, NewTabDiagram(cfg))
		}
	}

	c.active = &ActiveCase{
		Key:      key,
		Title:    title,
		Lead:     lead,
		Tags:     dedupeTags(data.Meta, modal.Tags),
		Sections: sections,
	}
}

// Active returns the current selection, or nil when nothing is open.
func (c *Catalog) Active() *ActiveCase {
	return c.active
}

// Close clears the selection entirely.
func (c *Catalog) Close() {
	c.active = nil
	c.mapDiagrams = nil
	c.tabDiagrams = nil
}

// ToggleSection flips the expand state of the i-th rendered section.
// Non-collapsible sections and out-of-range indices are ignored.
func (c *Catalog) ToggleSection(i int) {
	if c.active == nil || i < 0 || i >= len(c.active.Sections) {
		return
	}
	sec := &c.active.Sections[i]
	if !sec.Collapsible {
		return
	}
	sec.Collapsed = !sec.Collapsed
}

// MapDiagrams returns the map-variant diagram instances of the active
// selection, in section order.
func (c *Catalog) MapDiagrams() []*MapDiagram {
	return c.mapDiagrams
}

// TabDiagrams returns the tab-variant diagram instances of the active
// selection, in section order.
func (c *Catalog) TabDiagrams() []*TabDiagram {
	return c.tabDiagrams
}

func (c *Catalog) ReducedMotion() bool {
	return c.reducedMotion
}

// dedupeTags merges the two tag sources, collapsing case-insensitive
// duplicates onto the first-seen casing and preserving first-seen order.
func dedupeTags(meta, modal []string) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0, len(meta)+len(modal))

	for _, t := range append(append([]string{}, meta...), modal...) {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, t)
	}

	return tags
}
