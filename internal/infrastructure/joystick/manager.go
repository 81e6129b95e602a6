package joystick

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// DefaultGlob matches every Linux joystick node.
const DefaultGlob = "/dev/input/js*"

type slot struct {
	device *Device
	index  int
}

// Manager tracks joystick devices matching a glob and serves them as polled
// gamepads. Devices that fail to read are dropped; they come back on the next
// scan once the node reappears.
type Manager struct {
	glob    string
	mapping Mapping

	slots     map[string]*slot
	listeners []func(index int)
	mu        sync.Mutex
}

var (
	_ port.GamepadSource             = (*Manager)(nil)
	_ port.GamepadConnectionNotifier = (*Manager)(nil)
)

// NewManager creates a manager. Nothing is opened until Scan.
func NewManager(glob string, mapping Mapping) *Manager {
	if glob == "" {
		glob = DefaultGlob
	}
	return &Manager{
		glob:    glob,
		mapping: mapping,
		slots:   make(map[string]*slot),
	}
}

// OnConnected registers fn to be called with the gamepad index of every
// newly opened device.
func (m *Manager) OnConnected(fn func(index int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Scan opens new matching devices and closes the ones whose node vanished.
func (m *Manager) Scan(ctx context.Context) error {
	log := logging.FromContext(ctx)

	paths, err := filepath.Glob(m.glob)
	if err != nil {
		return fmt.Errorf("invalid joystick glob %q: %w", m.glob, err)
	}
	present := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		present[p] = struct{}{}
	}

	m.mu.Lock()
	for path, s := range m.slots {
		if _, ok := present[path]; !ok {
			_ = s.device.Close()
			delete(m.slots, path)
			log.Info().Str("device", path).Int("gamepad", s.index).Msg("joystick removed")
		}
	}

	var connected []int
	for _, path := range paths {
		if _, ok := m.slots[path]; ok {
			continue
		}
		dev, err := OpenDevice(path, m.mapping)
		if err != nil {
			log.Warn().Err(err).Str("device", path).Msg("cannot open joystick")
			continue
		}
		index := m.freeIndexLocked()
		m.slots[path] = &slot{device: dev, index: index}
		connected = append(connected, index)

		axes, buttons := dev.Counts()
		log.Info().
			Str("device", path).
			Str("name", dev.Name()).
			Int("axes", axes).
			Int("buttons", buttons).
			Int("gamepad", index).
			Msg("joystick connected")
	}
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()

	for _, index := range connected {
		for _, fn := range listeners {
			fn(index)
		}
	}
	return nil
}

func (m *Manager) freeIndexLocked() int {
	used := make(map[int]bool, len(m.slots))
	for _, s := range m.slots {
		used[s.index] = true
	}
	i := 0
	for used[i] {
		i++
	}
	return i
}

// Gamepads drains pending events and returns one snapshot per device,
// ordered by gamepad index.
func (m *Manager) Gamepads() []entity.GamepadState {
	m.mu.Lock()
	defer m.mu.Unlock()

	pads := make([]entity.GamepadState, 0, len(m.slots))
	for path, s := range m.slots {
		if _, err := s.device.Drain(); err != nil {
			_ = s.device.Close()
			delete(m.slots, path)
			continue
		}
		pads = append(pads, s.device.Snapshot(s.index))
	}
	sort.Slice(pads, func(i, j int) bool { return pads[i].Index < pads[j].Index })
	return pads
}

// Devices lists the open devices by gamepad index.
func (m *Manager) Devices() []*Device {
	m.mu.Lock()
	defer m.mu.Unlock()

	slots := make([]*slot, 0, len(m.slots))
	for _, s := range m.slots {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].index < slots[j].index })

	devices := make([]*Device, len(slots))
	for i, s := range slots {
		devices[i] = s.device
	}
	return devices
}

// Watch rescans whenever the device directory changes, until ctx is done.
func (m *Manager) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create device watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(m.glob)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if err := m.Scan(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if match, _ := filepath.Match(m.glob, ev.Name); !match {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Chmod) {
				if err := m.Scan(ctx); err != nil {
					log.Warn().Err(err).Msg("joystick rescan failed")
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("device watcher error")
		}
	}
}

// Close closes every device.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for path, s := range m.slots {
		_ = s.device.Close()
		delete(m.slots, path)
	}
	return nil
}
