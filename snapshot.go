package scrollstory

// PanelView is the populated narrative panel.
type PanelView struct {
	Side    Side
	Index   int
	Title   string
	Text    string // Revealed prefix of the body
	Typing  bool   // True until the whole body is revealed
	Density Density
}

// Snapshot is a read-only copy of the derived narrative state.
type Snapshot struct {
	Viewport  ViewportState
	Visible   VisibilitySet
	Active    int
	HasActive bool
	Reveal    RevealState
	Finale    bool
	Locked    bool
	Markers   []Marker
	Panel     *PanelView // Nil when no panel is shown
}

// PanelFor returns the panel if it is populated on side. The other side is
// always empty.
func (s Snapshot) PanelFor(side Side) (PanelView, bool) {
	if s.Panel == nil || s.Panel.Side != side {
		return PanelView{}, false
	}
	return *s.Panel, true
}
