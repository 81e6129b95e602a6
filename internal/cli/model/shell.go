package model

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
	"github.com/bnema/remotenav/internal/ui/focus"
)

// Terminal cells are mapped to virtual pixels so the engine's pixel tuning
// (alignment tolerance, scroll margins, pointer distances) keeps its meaning.
const (
	cellW = 10.0
	cellH = 20.0
)

// Layout, in terminal cells.
const (
	railCols    = 18
	channelRows = 3
	mainCol     = 20
	searchCols  = 32
	searchRows  = 3
	shelfTop    = 3
	shelfRows   = 7
	tileCols    = 16
	tileRows    = 5
	tileStride  = 18

	playerCol      = 2
	controlTop     = 4
	controlCols    = 12
	controlRows    = 3
	controlStride  = 14
	relatedTitle   = 8
	relatedTop     = 9
	infoRows       = 5
	playerDuration = 600

	modalCols      = 44
	modalRows      = 9
	modalButtonTop = 4
	modalButtonCol = 2
)

// Screens of the shell. They double as focus memory keys.
const (
	ScreenHome   = "home"
	ScreenPlayer = "player"

	scopeModal = "modal"
)

const searchID entity.TargetID = "search"

type nodeKind int

const (
	kindChannel nodeKind = iota
	kindSearch
	kindTile
	kindControl
	kindModalButton
)

// node is one laid-out focusable. Modal nodes are positioned in viewport
// cells; all others in page cells.
type node struct {
	id         entity.TargetID
	kind       nodeKind
	label      string
	col, row   int
	cols, rows int
	// scroller is the key of the horizontal scroller holding the node.
	scroller string
	disabled bool
	hidden   bool
	modal    bool
	payload  string
}

type route struct {
	screen string
	slug   string
	live   bool
}

type modalState struct {
	channel    string
	unregister func()
}

// Shell is the TV front end rendered in the terminal. It is the rendering
// layer of the focus engine: it lays out channels, carousels, a player and a
// channel modal in virtual pixels and applies focus markers, native focus,
// activation and scrolling on request.
type Shell struct {
	catalog Catalog

	routes   []route
	vpCols   int
	vpRows   int
	scrollY  float64
	hscroll  map[string]float64
	markers  map[entity.TargetID]bool
	native   entity.TargetID
	query    string
	modal    *modalState
	favorite map[string]bool
	status   string

	playing   bool
	position  int
	subtitles bool
	info      func() // unregisters the info overlay back handler; nil when closed

	engine   *focus.Engine
	ctx      context.Context
	onChange func()

	mu sync.Mutex
}

var (
	_ port.Surface       = (*Shell)(nil)
	_ port.FocusRenderer = (*Shell)(nil)
	_ port.Scroller      = (*Shell)(nil)
	_ port.Router        = (*Shell)(nil)
)

// NewShell creates a shell showing the home screen of catalog.
func NewShell(ctx context.Context, catalog Catalog) *Shell {
	return &Shell{
		catalog:  catalog,
		routes:   []route{{screen: ScreenHome}},
		vpCols:   80,
		vpRows:   24,
		hscroll:  make(map[string]float64),
		markers:  make(map[entity.TargetID]bool),
		favorite: make(map[string]bool),
		ctx:      logging.WithComponent(ctx, "tv-shell"),
	}
}

// Attach binds the engine driving the shell. Activation of channels, modals
// and overlays needs it to scope focus and register Back handlers.
func (s *Shell) Attach(engine *focus.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine = engine
}

// OnChange registers fn to be called after any visible change. fn must not
// block; it may be called with the focus controller's lock held.
func (s *Shell) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Shell) changed() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SetViewport resizes the visible region, in terminal cells.
func (s *Shell) SetViewport(cols, rows int) {
	s.mu.Lock()
	s.vpCols = max(cols, 1)
	s.vpRows = max(rows, 1)
	s.clampLocked()
	s.mu.Unlock()
	s.revalidate()
	s.changed()
}

// revalidate moves focus off a target the last layout change removed.
func (s *Shell) revalidate() {
	engine := s.boundEngine()
	if engine == nil || engine.Controller.Current() == "" {
		return
	}
	engine.Controller.Revalidate(s.ctx)
}

// Screen returns the current screen name.
func (s *Shell) Screen() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routeLocked().screen
}

// Status returns the last action message.
func (s *Shell) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// ModalOpen reports whether the channel modal is shown.
func (s *Shell) ModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal != nil
}

// InTextField reports whether the search field owns native focus.
func (s *Shell) InTextField() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.native == searchID && s.routeLocked().screen == ScreenHome && s.modal == nil
}

// TypeText appends text to the search query when the search field has focus.
func (s *Shell) TypeText(text string) bool {
	if !s.InTextField() {
		return false
	}
	s.mu.Lock()
	s.query += text
	s.clampLocked()
	s.mu.Unlock()
	s.revalidate()
	s.changed()
	return true
}

// DeleteChar removes the last rune of the search query.
func (s *Shell) DeleteChar() bool {
	if !s.InTextField() {
		return false
	}
	s.mu.Lock()
	if r := []rune(s.query); len(r) > 0 {
		s.query = string(r[:len(r)-1])
	}
	s.clampLocked()
	s.mu.Unlock()
	s.revalidate()
	s.changed()
	return true
}

func (s *Shell) routeLocked() route {
	return s.routes[len(s.routes)-1]
}

// layoutLocked lays out every focusable of the current screen in tree order.
func (s *Shell) layoutLocked() []node {
	var nodes []node
	r := s.routeLocked()
	switch r.screen {
	case ScreenPlayer:
		nodes = s.layoutPlayerLocked(r)
	default:
		nodes = s.layoutHomeLocked()
	}
	if s.modal != nil {
		nodes = append(nodes, s.layoutModalLocked()...)
	}
	return nodes
}

func (s *Shell) layoutHomeLocked() []node {
	nodes := make([]node, 0, 64)
	for i, ch := range s.catalog.Channels {
		nodes = append(nodes, node{
			id:      channelID(ch.Slug),
			kind:    kindChannel,
			label:   fmt.Sprintf("%d %s", ch.Number, ch.Name),
			col:     0,
			row:     i * channelRows,
			cols:    railCols,
			rows:    channelRows,
			payload: ch.Slug,
		})
	}
	nodes = append(nodes, node{
		id:   searchID,
		kind: kindSearch,
		col:  mainCol, row: 0,
		cols: searchCols, rows: searchRows,
	})
	for i, shelf := range s.catalog.Shelves {
		for j, t := range s.shelfTitlesLocked(shelf) {
			nodes = append(nodes, node{
				id:       tileID(shelf.Slug, t.Slug),
				kind:     kindTile,
				label:    t.Name,
				col:      mainCol + j*tileStride,
				row:      shelfTop + i*shelfRows + 1,
				cols:     tileCols,
				rows:     tileRows,
				scroller: scrollerKey(ScreenHome, shelf.Slug),
				disabled: shelf.Upcoming,
				payload:  t.Slug,
			})
		}
	}
	return nodes
}

var playerControls = []struct{ action, label string }{
	{"rewind", "-10s"},
	{"play", "Play/Pause"},
	{"forward", "+10s"},
	{"subtitles", "CC"},
	{"info", "Info"},
}

func (s *Shell) layoutPlayerLocked(r route) []node {
	nodes := make([]node, 0, 16)
	hasSubs := r.live
	if t, ok := s.catalog.title(r.slug); ok {
		hasSubs = t.Subtitles
	}
	for i, c := range playerControls {
		nodes = append(nodes, node{
			id:      controlID(c.action),
			kind:    kindControl,
			label:   c.label,
			col:     playerCol + i*controlStride,
			row:     controlTop,
			cols:    controlCols,
			rows:    controlRows,
			hidden:  c.action == "subtitles" && !hasSubs,
			payload: c.action,
		})
	}
	for j, t := range s.catalog.related(r.slug) {
		nodes = append(nodes, node{
			id:       tileID("related", t.Slug),
			kind:     kindTile,
			label:    t.Name,
			col:      playerCol + j*tileStride,
			row:      relatedTop,
			cols:     tileCols,
			rows:     tileRows,
			scroller: scrollerKey(ScreenPlayer, "related"),
			payload:  t.Slug,
		})
	}
	return nodes
}

var modalButtons = []struct{ action, label string }{
	{"watch", "Watch"},
	{"favorite", "Favorite"},
	{"close", "Close"},
}

func (s *Shell) layoutModalLocked() []node {
	left, top := s.modalOriginLocked()
	nodes := make([]node, 0, len(modalButtons))
	for i, b := range modalButtons {
		label := b.label
		if b.action == "favorite" && s.favorite[s.modal.channel] {
			label = "Unfavorite"
		}
		nodes = append(nodes, node{
			id:      modalID(b.action),
			kind:    kindModalButton,
			label:   label,
			col:     left + modalButtonCol + i*controlStride,
			row:     top + modalButtonTop,
			cols:    controlCols,
			rows:    controlRows,
			modal:   true,
			payload: b.action,
		})
	}
	return nodes
}

func (s *Shell) modalOriginLocked() (left, top int) {
	return max((s.vpCols-modalCols)/2, 0), max((s.vpRows-modalRows)/2, 0)
}

// shelfTitlesLocked returns the titles of shelf matching the search query.
func (s *Shell) shelfTitlesLocked(shelf Shelf) []Title {
	q := strings.ToLower(strings.TrimSpace(s.query))
	if q == "" {
		return shelf.Titles
	}
	out := make([]Title, 0, len(shelf.Titles))
	for _, t := range shelf.Titles {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Shell) findLocked(id entity.TargetID) (node, bool) {
	for _, n := range s.layoutLocked() {
		if n.id == id {
			return n, true
		}
	}
	return node{}, false
}

func (s *Shell) rectLocked(n node) entity.Rect {
	r := entity.Rect{
		X: float64(n.col) * cellW,
		Y: float64(n.row) * cellH,
		W: float64(n.cols) * cellW,
		H: float64(n.rows) * cellH,
	}
	if n.modal {
		return r
	}
	return r.Translate(-s.hscroll[n.scroller], -s.scrollY)
}

// Elements implements port.Surface.
func (s *Shell) Elements(scope string) []entity.Element {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := s.layoutLocked()
	out := make([]entity.Element, 0, len(nodes))
	for _, n := range nodes {
		if scope == scopeModal && !n.modal {
			continue
		}
		out = append(out, entity.Element{
			ID:        n.id,
			Key:       string(n.id),
			Focusable: true,
			Disabled:  n.disabled,
		})
	}
	return out
}

// BoundingRect implements port.Surface.
func (s *Shell) BoundingRect(id entity.TargetID) (entity.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.findLocked(id)
	if !ok {
		return entity.Rect{}, false
	}
	return s.rectLocked(n), true
}

// ComputedStyle implements port.Surface.
func (s *Shell) ComputedStyle(id entity.TargetID) entity.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	style := entity.VisibleStyle()
	if n, ok := s.findLocked(id); ok && n.hidden {
		style.Visibility = entity.VisibilityHidden
	}
	return style
}

// InExcludedContainer implements port.Surface. While the modal is open the
// page underneath is inert.
func (s *Shell) InExcludedContainer(id entity.TargetID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modal == nil {
		return false
	}
	n, ok := s.findLocked(id)
	return ok && !n.modal
}

// SetFocusMarker implements port.FocusRenderer.
func (s *Shell) SetFocusMarker(id entity.TargetID, focused bool) {
	s.mu.Lock()
	if focused {
		s.markers[id] = true
	} else {
		delete(s.markers, id)
	}
	s.mu.Unlock()
	s.changed()
}

// FocusNative implements port.FocusRenderer.
func (s *Shell) FocusNative(id entity.TargetID) {
	s.mu.Lock()
	s.native = id
	s.mu.Unlock()
}

// Focused reports whether id carries the focus marker.
func (s *Shell) Focused(id entity.TargetID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markers[id]
}

// Viewport implements port.Scroller.
func (s *Shell) Viewport() entity.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.Rect{W: float64(s.vpCols) * cellW, H: float64(s.vpRows) * cellH}
}

// HorizontalScroller implements port.Scroller.
func (s *Shell) HorizontalScroller(id entity.TargetID) (entity.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.findLocked(id)
	if !ok || n.scroller == "" {
		return entity.Rect{}, false
	}
	col := s.scrollerColLocked(n.scroller)
	return entity.Rect{
		X: float64(col) * cellW,
		Y: float64(n.row)*cellH - s.scrollY,
		W: float64(s.vpCols-col) * cellW,
		H: float64(n.rows) * cellH,
	}, true
}

// ScrollHorizontal implements port.Scroller. Offsets snap to whole cells.
func (s *Shell) ScrollHorizontal(id entity.TargetID, dx float64) {
	s.mu.Lock()
	n, ok := s.findLocked(id)
	if ok && n.scroller != "" {
		s.hscroll[n.scroller] = snap(s.hscroll[n.scroller]+dx, cellW)
		s.clampLocked()
	}
	s.mu.Unlock()
	s.changed()
}

// ScrollVertical implements port.Scroller. Offsets snap to whole cells.
func (s *Shell) ScrollVertical(dy float64) {
	s.mu.Lock()
	s.scrollY = snap(s.scrollY+dy, cellH)
	s.clampLocked()
	s.mu.Unlock()
	s.changed()
}

func snap(v, unit float64) float64 {
	return math.Round(v/unit) * unit
}

func (s *Shell) scrollerColLocked(key string) int {
	if strings.HasPrefix(key, ScreenPlayer+"/") {
		return playerCol
	}
	return mainCol
}

// clampLocked keeps every scroll offset inside its content.
func (s *Shell) clampLocked() {
	maxY := float64(max(s.contentRowsLocked()-s.vpRows, 0)) * cellH
	s.scrollY = math.Max(0, math.Min(s.scrollY, maxY))

	counts := make(map[string]int)
	for _, n := range s.layoutLocked() {
		if n.scroller != "" {
			counts[n.scroller]++
		}
	}
	for key, off := range s.hscroll {
		width := s.vpCols - s.scrollerColLocked(key)
		content := 0
		if c := counts[key]; c > 0 {
			content = (c-1)*tileStride + tileCols
		}
		maxX := float64(max(content-width, 0)) * cellW
		s.hscroll[key] = math.Max(0, math.Min(off, maxX))
	}
}

func (s *Shell) contentRowsLocked() int {
	if s.routeLocked().screen == ScreenPlayer {
		rows := relatedTop + tileRows + 1
		if s.info != nil {
			rows += infoRows
		}
		return rows
	}
	return max(len(s.catalog.Channels)*channelRows, shelfTop+len(s.catalog.Shelves)*shelfRows)
}

// HitTest returns the focusable under the terminal cell (col, row) of the
// viewport. Hidden controls and inert page content are never hit.
func (s *Shell) HitTest(col, row int) (entity.TargetID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	x := (float64(col) + 0.5) * cellW
	y := (float64(row) + 0.5) * cellH
	for _, n := range s.layoutLocked() {
		if n.hidden || (s.modal != nil && !n.modal) {
			continue
		}
		r := s.rectLocked(n)
		if n.scroller != "" && r.X < float64(s.scrollerColLocked(n.scroller))*cellW {
			continue
		}
		if x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom() {
			return n.id, true
		}
	}
	return "", false
}

// AtRoot implements port.Router.
func (s *Shell) AtRoot() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.routes) <= 1
}

// NavigateBack implements port.Router.
func (s *Shell) NavigateBack(ctx context.Context) {
	s.mu.Lock()
	if len(s.routes) <= 1 {
		s.mu.Unlock()
		return
	}
	s.routes = s.routes[:len(s.routes)-1]
	closeInfo := s.resetScreenLocked()
	screen := s.routeLocked().screen
	s.status = ""
	s.mu.Unlock()

	if closeInfo != nil {
		closeInfo()
	}
	s.enterScreen(ctx, screen)
}

func (s *Shell) navigate(ctx context.Context, r route) {
	s.mu.Lock()
	s.routes = append(s.routes, r)
	closeInfo := s.resetScreenLocked()
	s.playing = true
	s.position = 0
	s.subtitles = false
	s.status = ""
	s.mu.Unlock()

	if closeInfo != nil {
		closeInfo()
	}
	s.enterScreen(ctx, r.screen)
}

// resetScreenLocked resets per-screen scroll state and returns the Back
// handler of the info overlay to unregister, if it was open.
func (s *Shell) resetScreenLocked() func() {
	s.scrollY = 0
	delete(s.hscroll, scrollerKey(ScreenPlayer, "related"))
	closeInfo := s.info
	s.info = nil
	return closeInfo
}

func (s *Shell) enterScreen(ctx context.Context, screen string) {
	s.changed()
	if engine := s.boundEngine(); engine != nil {
		engine.Controller.ResetForRoute(logging.WithScreen(ctx, screen), screen)
	}
}

func (s *Shell) boundEngine() *focus.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine
}

// Activate implements port.FocusRenderer. It is the single activation entry
// point shared by Select and pointer clicks.
func (s *Shell) Activate(id entity.TargetID) {
	s.mu.Lock()
	n, ok := s.findLocked(id)
	ctx := s.ctx
	s.mu.Unlock()
	if !ok || n.disabled || n.hidden {
		return
	}

	logging.FromContext(ctx).Debug().Str("target", string(id)).Msg("activate")

	switch n.kind {
	case kindChannel:
		s.openModal(ctx, n.payload)
	case kindTile:
		s.navigate(ctx, route{screen: ScreenPlayer, slug: n.payload})
	case kindSearch:
		s.setStatus("Type to search, ↑/↓ to leave the field")
	case kindControl:
		s.control(ctx, n.payload)
	case kindModalButton:
		s.modalAction(ctx, n.payload)
	}
	s.changed()
}

func (s *Shell) setStatus(msg string) {
	s.mu.Lock()
	s.status = msg
	s.mu.Unlock()
}

func (s *Shell) openModal(ctx context.Context, channel string) {
	engine := s.boundEngine()
	s.mu.Lock()
	if s.modal != nil || engine == nil {
		s.mu.Unlock()
		return
	}
	m := &modalState{channel: channel}
	s.modal = m
	s.mu.Unlock()

	m.unregister = engine.RegisterBackHandler(func(ctx context.Context) bool {
		s.closeModal(ctx)
		return true
	})
	engine.Controller.SetScope(scopeModal)
	if engine.Controller.RemoteMode() {
		engine.Controller.FocusFirst(ctx, scopeModal)
	}
}

func (s *Shell) closeModal(ctx context.Context) {
	engine := s.boundEngine()
	s.mu.Lock()
	m := s.modal
	s.modal = nil
	s.mu.Unlock()
	if m == nil || engine == nil {
		return
	}

	if m.unregister != nil {
		m.unregister()
	}
	engine.Controller.SetScope("")
	engine.Controller.FocusElement(ctx, string(channelID(m.channel)), "")
	s.changed()
}

func (s *Shell) modalAction(ctx context.Context, action string) {
	s.mu.Lock()
	if s.modal == nil {
		s.mu.Unlock()
		return
	}
	channel := s.modal.channel
	s.mu.Unlock()

	switch action {
	case "watch":
		s.closeModal(ctx)
		s.navigate(ctx, route{screen: ScreenPlayer, slug: channel, live: true})
	case "favorite":
		s.mu.Lock()
		s.favorite[channel] = !s.favorite[channel]
		s.mu.Unlock()
	case "close":
		s.closeModal(ctx)
	}
}

func (s *Shell) control(ctx context.Context, action string) {
	engine := s.boundEngine()

	s.mu.Lock()
	var (
		openInfo  bool
		closeInfo func()
	)
	switch action {
	case "rewind":
		s.position = max(s.position-10, 0)
	case "forward":
		s.position = min(s.position+10, playerDuration)
	case "play":
		s.playing = !s.playing
	case "subtitles":
		s.subtitles = !s.subtitles
	case "info":
		if s.info != nil {
			closeInfo = s.info
			s.info = nil
		} else {
			openInfo = engine != nil
		}
	}
	s.clampLocked()
	s.mu.Unlock()

	if closeInfo != nil {
		closeInfo()
	}
	if openInfo {
		var unregister func()
		unregister = engine.RegisterBackHandler(func(context.Context) bool {
			s.mu.Lock()
			open := s.info != nil
			s.info = nil
			s.clampLocked()
			s.mu.Unlock()
			unregister()
			s.changed()
			return open
		})
		s.mu.Lock()
		s.info = unregister
		s.mu.Unlock()
	}
	logging.FromContext(ctx).Debug().Str("action", action).Msg("player control")
}

func channelID(slug string) entity.TargetID { return entity.TargetID("channel:" + slug) }

func tileID(shelf, slug string) entity.TargetID {
	return entity.TargetID("tile:" + shelf + ":" + slug)
}

func controlID(action string) entity.TargetID { return entity.TargetID("control:" + action) }

func modalID(action string) entity.TargetID { return entity.TargetID("modal:" + action) }

func scrollerKey(screen, shelf string) string { return screen + "/" + shelf }
