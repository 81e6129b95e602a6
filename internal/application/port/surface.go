package port

import "github.com/bnema/remotenav/internal/domain/entity"

// Surface is the rendering layer's view of focus candidates.
// It exposes declarative markers and live geometry so the engine never
// touches widgets directly. Geometry is read on demand and must not be cached
// by implementations across navigations.
type Surface interface {
	// Elements returns every element marked as a focus candidate inside scope,
	// in tree order. An empty scope means the whole document.
	Elements(scope string) []entity.Element

	// BoundingRect returns the element's current rectangle in viewport pixels.
	// ok is false when the element is no longer in the tree.
	BoundingRect(id entity.TargetID) (rect entity.Rect, ok bool)

	// ComputedStyle returns the style subset that decides visibility.
	ComputedStyle(id entity.TargetID) entity.Style

	// InExcludedContainer reports whether the element is nested inside a
	// container flagged as excluded from navigation (e.g. an inactive tab panel).
	InExcludedContainer(id entity.TargetID) bool
}
