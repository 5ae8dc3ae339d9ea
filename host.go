package okpicker

// Painter draws into the host framework's current frame. The picker only
// needs a handful of primitives; everything else (layout, clipping,
// anti-aliasing) stays the host's business.
type Painter interface {
	// FillRect fills r with a single color.
	FillRect(r Rect, fill DisplayRGBA)
	// StrokeRect outlines r with a stroke of the given width.
	StrokeRect(r Rect, width float32, stroke DisplayRGBA)
	// FillPolygon fills the polygon described by points and outlines it.
	FillPolygon(points []Pos, fill DisplayRGBA, strokeWidth float32, stroke DisplayRGBA)
	// FillCircle fills a circle and outlines it.
	FillCircle(center Pos, radius float32, fill DisplayRGBA, strokeWidth float32, stroke DisplayRGBA)
	// Mesh draws a triangle list with per-vertex colors, interpolating
	// colors across each triangle.
	Mesh(m *Mesh)
}

// Input answers the pointer and key queries the picker makes during a
// pass. Implementations are expected to resolve overlap and focus rules
// themselves; the picker just asks about its own regions.
type Input interface {
	// Activated reports a click inside r this pass.
	Activated(r Rect) bool
	// PointerPos returns the pointer position while r is being clicked or
	// dragged, and whether such an interaction is in progress.
	PointerPos(r Rect) (Pos, bool)
	// EscapePressed reports whether the escape/cancel key fired this pass.
	EscapePressed() bool
	// ActivatedOutside reports a click outside r this pass.
	ActivatedOutside(r Rect) bool
}

// Clipboard receives text when the user invokes the copy action.
type Clipboard interface {
	SetText(text string)
}

// Host bundles the framework collaborators the picker consumes.
//
// Cache is the process-wide round-trip store. The embedding application
// owns its lifecycle and passes the handle on every call rather than the
// picker holding implicit global state; several pickers sharing one cache
// still look up and store only under their own current quantized color.
type Host struct {
	Painter   Painter
	Input     Input
	Clipboard Clipboard
	Cache     *RoundTripCache
}
