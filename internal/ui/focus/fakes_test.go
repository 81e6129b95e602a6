package focus

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/remotenav/internal/domain/entity"
)

type fakeElement struct {
	el       entity.Element
	rect     entity.Rect
	style    entity.Style
	excluded bool
	scope    string
}

// fakeSurface is an in-memory rendering layer.
type fakeSurface struct {
	mu       sync.Mutex
	elements []*fakeElement
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{}
}

func (s *fakeSurface) add(id string, x, y, w, h float64) *fakeElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	fe := &fakeElement{
		el:    entity.Element{ID: entity.TargetID(id), Key: "key-" + id, Focusable: true},
		rect:  entity.Rect{X: x, Y: y, W: w, H: h},
		style: entity.VisibleStyle(),
	}
	s.elements = append(s.elements, fe)
	return fe
}

// addGrid lays out rows x cols cells of 100x50 with 20px gaps; IDs are "r<row>c<col>".
func (s *fakeSurface) addGrid(rows, cols int) {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			s.add(fmt.Sprintf("r%dc%d", row+1, col+1), float64(col)*120+200, float64(row)*80+200, 100, 50)
		}
	}
}

func (s *fakeSurface) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, fe := range s.elements {
		if string(fe.el.ID) == id {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return
		}
	}
}

func (s *fakeSurface) Elements(scope string) []entity.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Element
	for _, fe := range s.elements {
		if scope == "" || fe.scope == scope {
			out = append(out, fe.el)
		}
	}
	return out
}

func (s *fakeSurface) find(id entity.TargetID) *fakeElement {
	for _, fe := range s.elements {
		if fe.el.ID == id {
			return fe
		}
	}
	return nil
}

func (s *fakeSurface) BoundingRect(id entity.TargetID) (entity.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fe := s.find(id); fe != nil {
		return fe.rect, true
	}
	return entity.Rect{}, false
}

func (s *fakeSurface) ComputedStyle(id entity.TargetID) entity.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fe := s.find(id); fe != nil {
		return fe.style
	}
	return entity.Style{}
}

func (s *fakeSurface) InExcludedContainer(id entity.TargetID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fe := s.find(id); fe != nil {
		return fe.excluded
	}
	return false
}

// fakeRenderer records focus side effects.
type fakeRenderer struct {
	markers   map[entity.TargetID]bool
	native    []entity.TargetID
	activated []entity.TargetID
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{markers: make(map[entity.TargetID]bool)}
}

func (r *fakeRenderer) SetFocusMarker(id entity.TargetID, focused bool) {
	if focused {
		r.markers[id] = true
		return
	}
	delete(r.markers, id)
}

func (r *fakeRenderer) FocusNative(id entity.TargetID) { r.native = append(r.native, id) }

func (r *fakeRenderer) Activate(id entity.TargetID) { r.activated = append(r.activated, id) }

func (r *fakeRenderer) marked() []entity.TargetID {
	var out []entity.TargetID
	for id := range r.markers {
		out = append(out, id)
	}
	return out
}

// fakeScroller records scroll requests.
type fakeScroller struct {
	viewport   entity.Rect
	containers map[entity.TargetID]entity.Rect
	dx         []float64
	dy         []float64
}

func newFakeScroller(w, h float64) *fakeScroller {
	return &fakeScroller{
		viewport:   entity.Rect{W: w, H: h},
		containers: make(map[entity.TargetID]entity.Rect),
	}
}

func (s *fakeScroller) Viewport() entity.Rect { return s.viewport }

func (s *fakeScroller) HorizontalScroller(id entity.TargetID) (entity.Rect, bool) {
	r, ok := s.containers[id]
	return r, ok
}

func (s *fakeScroller) ScrollHorizontal(_ entity.TargetID, dx float64) { s.dx = append(s.dx, dx) }

func (s *fakeScroller) ScrollVertical(dy float64) { s.dy = append(s.dy, dy) }

// fakeMemory is an in-memory focus memory repository.
type fakeMemory struct {
	mu      sync.Mutex
	screens map[string]string
}

func newFakeMemory() *fakeMemory {
	return &fakeMemory{screens: make(map[string]string)}
}

func (m *fakeMemory) Get(_ context.Context, screen string) (*entity.FocusMemory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.screens[screen]
	if !ok {
		return nil, nil
	}
	return &entity.FocusMemory{Screen: screen, Key: key}, nil
}

func (m *fakeMemory) Set(_ context.Context, mem *entity.FocusMemory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screens[mem.Screen] = mem.Key
	return nil
}

func (m *fakeMemory) Delete(_ context.Context, screen string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.screens, screen)
	return nil
}

func (m *fakeMemory) GetAll(_ context.Context) ([]*entity.FocusMemory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.FocusMemory
	for screen, key := range m.screens {
		out = append(out, &entity.FocusMemory{Screen: screen, Key: key})
	}
	return out, nil
}

func (m *fakeMemory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screens = make(map[string]string)
	return nil
}
