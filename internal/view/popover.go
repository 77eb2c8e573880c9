package view

// Geometry for the anchored popover. Mirrors DOM bounding boxes: Top/Left
// are offsets from the viewport origin, Y grows downward.

type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

func (r Rect) Bottom() float64 { return r.Top + r.Height }
func (r Rect) Right() float64  { return r.Left + r.Width }

type Size struct {
	Width  float64
	Height float64
}

type Placement string

const (
	PlacementTop    Placement = "top"
	PlacementBottom Placement = "bottom"
	PlacementRight  Placement = "right"
	PlacementLeft   Placement = "left"
)

const (
	popoverMargin = 12 // minimum gap to every viewport edge
	popoverOffset = 10 // gap between the reference box and the panel
)

type Position struct {
	Top       float64
	Left      float64
	Placement Placement
}

// PlacePopover picks the first placement, in top/bottom/right/left
// priority order, whose relevant panel dimension plus the offset fits in
// the space between the reference box and that viewport edge (minus the
// margin), falling back to left unconditionally. The panel is centered
// along the perpendicular axis, then both coordinates are clamped so the
// panel never leaves [margin, viewportEdge-size-margin].
func PlacePopover(ref Rect, panel Size, viewportWidth, viewportHeight float64) Position {
	spaceTop := ref.Top - popoverMargin
	spaceBottom := viewportHeight - ref.Bottom() - popoverMargin
	spaceRight := viewportWidth - ref.Right() - popoverMargin

	var placement Placement
	switch {
	case panel.Height+popoverOffset <= spaceTop:
		placement = PlacementTop
	case panel.Height+popoverOffset <= spaceBottom:
		placement = PlacementBottom
	case panel.Width+popoverOffset <= spaceRight:
		placement = PlacementRight
	default:
		placement = PlacementLeft
	}

	var top, left float64
	switch placement {
	case PlacementTop:
		top = ref.Top - panel.Height - popoverOffset
		left = ref.Left + ref.Width/2 - panel.Width/2
	case PlacementBottom:
		top = ref.Bottom() + popoverOffset
		left = ref.Left + ref.Width/2 - panel.Width/2
	case PlacementRight:
		top = ref.Top + ref.Height/2 - panel.Height/2
		left = ref.Right() + popoverOffset
	default:
		top = ref.Top + ref.Height/2 - panel.Height/2
		left = ref.Left - panel.Width - popoverOffset
	}

	top = clamp(top, popoverMargin, viewportHeight-panel.Height-popoverMargin)
	left = clamp(left, popoverMargin, viewportWidth-panel.Width-popoverMargin)

	return Position{Top: top, Left: left, Placement: placement}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type PopoverState int

const (
	PopoverClosed PopoverState = iota
	PopoverMeasuring
	PopoverPositioned
)

// Popover is the state machine around PlacePopover: opened against a
// reference box, it stays in the measuring state until the panel reports
// a real size, then commits coordinates. Any ref or data change recomputes
// from scratch; there is no intermediate moving state.
type Popover struct {
	state    PopoverState
	ref      Rect
	data     *Rationale
	panel    Size
	pos      Position
	viewport Size
}

func NewPopover(viewportWidth, viewportHeight float64) *Popover {
	return &Popover{viewport: Size{Width: viewportWidth, Height: viewportHeight}}
}

// Open starts a fresh cycle against ref. The previous panel measurement
// is discarded: new content lays out at its own size, so the popover
// stays in the measuring state until SetPanelSize reports again.
func (p *Popover) Open(ref Rect, data *Rationale) {
	p.ref = ref
	p.data = data
	p.panel = Size{}
	p.state = PopoverMeasuring
}

// SetPanelSize reports the panel's laid-out size. A zero dimension means
// layout has not happened yet and is ignored.
func (p *Popover) SetPanelSize(panel Size) {
	if p.state == PopoverClosed {
		return
	}
	if panel.Width <= 0 || panel.Height <= 0 {
		return
	}
	p.panel = panel
	p.recompute()
}

// SetViewport updates the viewport bounds and repositions an open popover.
func (p *Popover) SetViewport(width, height float64) {
	p.viewport = Size{Width: width, Height: height}
	if p.state == PopoverPositioned {
		p.state = PopoverMeasuring
		p.recompute()
	}
}

func (p *Popover) recompute() {
	if p.state != PopoverMeasuring || p.panel.Width <= 0 || p.panel.Height <= 0 {
		return
	}
	p.pos = PlacePopover(p.ref, p.panel, p.viewport.Width, p.viewport.Height)
	p.state = PopoverPositioned
}

func (p *Popover) Close() {
	p.state = PopoverClosed
	p.data = nil
	p.panel = Size{}
}

// Escape closes the popover; only relevant while open.
func (p *Popover) Escape() {
	if p.state == PopoverClosed {
		return
	}
	p.Close()
}

// OutsideClick closes the popover, same as Escape.
func (p *Popover) OutsideClick() {
	p.Escape()
}

func (p *Popover) State() PopoverState {
	return p.state
}

// Position returns the committed coordinates; ok is false until the panel
// has been measured.
func (p *Popover) Position() (Position, bool) {
	if p.state != PopoverPositioned {
		return Position{}, false
	}
	return p.pos, true
}

func (p *Popover) Data() *Rationale {
	return p.data
}
