package view

// MapDiagramKey identifies the one diagram rendered as a positioned marker
// map; every other key renders as the tab variant.
const MapDiagramKey = "serviceops"

// Rationale is the per-node detail content shown in the popover (map
// variant) or the detail pane (tab variant).
type Rationale struct {
	Title        string
	Why          string
	How          []string
	Decisions    []string
	NotAutomated []string
	Production   []string
}

// DiagramNode is one node of a design-rationale diagram. X and Y are
// percentage coordinates and only meaningful for the map variant.
type DiagramNode struct {
	ID string
	X  float64
	Y  float64
	Rationale
}

type DiagramConfig struct {
	Nodes []DiagramNode
	// DefaultIndex selects the initially-open tab; nil falls back to 0.
	// Unused by the map variant.
	DefaultIndex *int
}

// MapDiagram drives the marker-map variant. At most one marker is active
// at a time; a pinned marker (focus, click, Enter/Space) wins over hover.
// Dismissal is owned by the instance: callers route Escape presses and
// outside clicks to the corresponding methods, so two mounted instances
// never fight over a shared listener.
type MapDiagram struct {
	nodes         []DiagramNode
	hoverCapable  bool
	reducedMotion bool
	pinned        string
	active        string
}

func NewMapDiagram(cfg DiagramConfig, hoverCapable, reducedMotion bool) *MapDiagram {
	return &MapDiagram{
		nodes:         cfg.Nodes,
		hoverCapable:  hoverCapable,
		reducedMotion: reducedMotion,
	}
}

func (d *MapDiagram) node(id string) (DiagramNode, bool) {
	for _, n := range d.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return DiagramNode{}, false
}

func (d *MapDiagram) setActive(id string) {
	if id == "" {
		d.active = ""
		return
	}
	if _, ok := d.node(id); !ok {
		return
	}
	d.active = id
}

// Hover activates a marker while nothing is pinned, on hover-capable
// devices only.
func (d *MapDiagram) Hover(id string) {
	if !d.hoverCapable || d.pinned != "" {
		return
	}
	d.setActive(id)
}

// Leave clears a hover activation; a pinned marker stays.
func (d *MapDiagram) Leave() {
	if !d.hoverCapable || d.pinned != "" {
		return
	}
	d.setActive("")
}

// Focus pins a marker (keyboard navigation).
func (d *MapDiagram) Focus(id string) {
	if _, ok := d.node(id); !ok {
		return
	}
	d.pinned = id
	d.setActive(id)
}

// Blur releases the pin only if the blurred marker holds it.
func (d *MapDiagram) Blur(id string) {
	if d.pinned != id {
		return
	}
	d.pinned = ""
	d.setActive("")
}

// Toggle pins the marker, or unpins it when it is already pinned
// (click, Enter, Space).
func (d *MapDiagram) Toggle(id string) {
	if d.pinned == id {
		d.pinned = ""
		d.setActive("")
		return
	}
	if _, ok := d.node(id); !ok {
		return
	}
	d.pinned = id
	d.setActive(id)
}

// Escape clears any activation, pinned or not.
func (d *MapDiagram) Escape() {
	d.pinned = ""
	d.setActive("")
}

// OutsideClick clears any activation, same as Escape.
func (d *MapDiagram) OutsideClick() {
	d.pinned = ""
	d.setActive("")
}

// ActiveNode returns the marker whose popover should be open, if any.
func (d *MapDiagram) ActiveNode() (DiagramNode, bool) {
	if d.active == "" {
		return DiagramNode{}, false
	}
	return d.node(d.active)
}

func (d *MapDiagram) Pinned() bool {
	return d.pinned != ""
}

func (d *MapDiagram) Nodes() []DiagramNode {
	return d.nodes
}

func (d *MapDiagram) ReducedMotion() bool {
	return d.reducedMotion
}

// TabDiagram drives the tab-row variant: exactly one tab is selected at
// all times and its rationale fills the detail pane.
type TabDiagram struct {
	nodes    []DiagramNode
	selected int
}

func NewTabDiagram(cfg DiagramConfig) *TabDiagram {
	selected := 0
	if cfg.DefaultIndex != nil && *cfg.DefaultIndex >= 0 && *cfg.DefaultIndex < len(cfg.Nodes) {
		selected = *cfg.DefaultIndex
	}
	return &TabDiagram{nodes: cfg.Nodes, selected: selected}
}

// Select switches the active tab; out-of-range indices are ignored.
func (d *TabDiagram) Select(i int) {
	if i < 0 || i >= len(d.nodes) {
		return
	}
	d.selected = i
}

func (d *TabDiagram) Selected() int {
	return d.selected
}

func (d *TabDiagram) SelectedNode() DiagramNode {
	return d.nodes[d.selected]
}

func (d *TabDiagram) Nodes() []DiagramNode {
	return d.nodes
}
