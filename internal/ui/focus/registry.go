// Package focus provides focus state management and spatial navigation for
// remote-control style input.
package focus

import (
	"context"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// Registry enumerates the currently valid focus targets of a surface.
// Nothing is cached: layout can change between navigations.
type Registry struct {
	surface port.Surface
}

// NewRegistry creates a registry over the given surface.
func NewRegistry(surface port.Surface) *Registry {
	return &Registry{surface: surface}
}

// CollectCandidates gathers geometry from all eligible targets inside scope.
// An empty scope means the whole document. Order follows the surface's tree
// order, so the first candidate is a reasonable default focus.
func (r *Registry) CollectCandidates(ctx context.Context, scope string) []entity.Candidate {
	log := logging.FromContext(ctx)

	elements := r.surface.Elements(scope)
	candidates := make([]entity.Candidate, 0, len(elements))

	for _, el := range elements {
		rect, ok := r.eligibleRect(el)
		if !ok {
			continue
		}
		candidates = append(candidates, entity.Candidate{
			ID:   el.ID,
			Key:  el.Key,
			Rect: rect,
		})
	}

	log.Trace().
		Str("scope", scope).
		Int("elements", len(elements)).
		Int("candidates", len(candidates)).
		Msg("collected focus candidates")

	return candidates
}

// IsValid reports whether id is still an eligible target inside scope.
func (r *Registry) IsValid(ctx context.Context, id entity.TargetID, scope string) bool {
	if id == "" {
		return false
	}
	_, ok := r.Lookup(ctx, id, scope)
	return ok
}

// Lookup returns the candidate for id if it is currently eligible inside scope.
func (r *Registry) Lookup(_ context.Context, id entity.TargetID, scope string) (entity.Candidate, bool) {
	for _, el := range r.surface.Elements(scope) {
		if el.ID != id {
			continue
		}
		rect, ok := r.eligibleRect(el)
		if !ok {
			return entity.Candidate{}, false
		}
		return entity.Candidate{ID: el.ID, Key: el.Key, Rect: rect}, true
	}
	return entity.Candidate{}, false
}

// FindByKey returns the eligible candidate carrying the given focus key.
func (r *Registry) FindByKey(_ context.Context, key, scope string) (entity.Candidate, bool) {
	if key == "" {
		return entity.Candidate{}, false
	}
	for _, el := range r.surface.Elements(scope) {
		if el.Key != key {
			continue
		}
		if rect, ok := r.eligibleRect(el); ok {
			return entity.Candidate{ID: el.ID, Key: el.Key, Rect: rect}, true
		}
	}
	return entity.Candidate{}, false
}

// eligibleRect applies the eligibility rules and returns the live rect.
func (r *Registry) eligibleRect(el entity.Element) (entity.Rect, bool) {
	if !el.Focusable || el.Disabled {
		return entity.Rect{}, false
	}

	rect, ok := r.surface.BoundingRect(el.ID)
	// Skip targets with no size (collapsed/detached)
	if !ok || rect.Empty() {
		return entity.Rect{}, false
	}

	if !r.surface.ComputedStyle(el.ID).Visible() {
		return entity.Rect{}, false
	}

	if r.surface.InExcludedContainer(el.ID) {
		return entity.Rect{}, false
	}

	return rect, true
}
