package port

import "github.com/bnema/remotenav/internal/domain/entity"

// FocusRenderer applies focus side effects on the rendering layer.
type FocusRenderer interface {
	// SetFocusMarker adds or removes the visual focus marker of a target.
	SetFocusMarker(id entity.TargetID, focused bool)

	// FocusNative moves native input focus to the target without scrolling.
	FocusNative(id entity.TargetID)

	// Activate triggers the target exactly like a pointer click would.
	Activate(id entity.TargetID)
}

// Scroller moves scrollable regions so a focused target stays in view.
type Scroller interface {
	// Viewport returns the visible region size. X and Y are always zero since
	// bounding rects are viewport-relative.
	Viewport() entity.Rect

	// HorizontalScroller returns the rect of the nearest horizontally
	// scrollable ancestor of the target, if any.
	HorizontalScroller(id entity.TargetID) (rect entity.Rect, ok bool)

	// ScrollHorizontal scrolls the nearest horizontal scroller of the target by dx.
	ScrollHorizontal(id entity.TargetID, dx float64)

	// ScrollVertical scrolls the page by dy.
	ScrollVertical(dy float64)
}
