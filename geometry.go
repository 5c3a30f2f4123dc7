package scrollstory

// Rect is the vertical extent of a rendered element in surface coordinates.
type Rect struct {
	Top    float64
	Bottom float64
}

// Height returns the vertical size of the rect.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// ViewportState describes the scroll container at the moment it was sampled.
type ViewportState struct {
	ScrollOffset     float64 // Current scroll position
	ContainerHeight  float64 // Visible height of the container
	ContainerTop     float64 // Top edge of the container in surface coordinates
	ScrollableHeight float64 // Maximum scroll offset (content height minus container height)
}

// Surface is the host rendering surface the narrative is drawn on.
type Surface interface {
	// Viewport returns live container geometry, or false when the container
	// is not mounted.
	Viewport() (ViewportState, bool)
	// AnchorRect returns the live geometry of a chapter's anchor image, or
	// false when that chapter is not mounted.
	AnchorRect(index int) (Rect, bool)
	// ScrollTo starts an animated scroll to offset.
	ScrollTo(offset float64)
	// Listen registers fn for scroll and resize events. The returned func
	// removes the registration.
	Listen(fn func()) (remove func())
}

// Sampler reads geometry from a Surface on demand. It never caches; every
// call goes back to the surface.
type Sampler struct {
	surface Surface
}

// NewSampler returns a Sampler over s. A nil surface samples as unmounted.
func NewSampler(s Surface) *Sampler {
	return &Sampler{surface: s}
}

// Sample returns the current viewport state, or the zero ViewportState when
// the container is not mounted.
func (s *Sampler) Sample() ViewportState {
	if s == nil || s.surface == nil {
		return ViewportState{}
	}
	vp, ok := s.surface.Viewport()
	if !ok {
		return ViewportState{}
	}
	return vp
}

// AnchorRect returns the anchor geometry of the chapter at index.
func (s *Sampler) AnchorRect(index int) (Rect, bool) {
	if s == nil || s.surface == nil || index < 0 {
		return Rect{}, false
	}
	return s.surface.AnchorRect(index)
}
