package joystick

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/bnema/remotenav/internal/domain/entity"
)

// ioctl requests from linux/joystick.h.
const (
	jsiocgAxes    = 0x80016a11 // _IOR('j', 0x11, __u8)
	jsiocgButtons = 0x80016a12 // _IOR('j', 0x12, __u8)
	jsNameLen     = 128
)

func jsiocgName(length int) uint {
	// _IOC(_IOC_READ, 'j', 0x13, len)
	return uint(2)<<30 | uint(length)<<16 | uint('j')<<8 | 0x13
}

// Device is an open joystick device node, read without blocking.
type Device struct {
	path    string
	name    string
	axes    int
	buttons int

	fd    int
	state *state
	buf   []byte
	mu    sync.Mutex
}

// OpenDevice opens path in non-blocking mode and queries its identity.
// Identity ioctls that fail (for instance on a plain file) leave defaults.
func OpenDevice(path string, mapping Mapping) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	d := &Device{
		path:  path,
		name:  "unknown controller",
		fd:    fd,
		state: newState(mapping),
		buf:   make([]byte, EventSize*64),
	}

	if n, err := unix.IoctlGetInt(fd, jsiocgAxes); err == nil {
		d.axes = n & 0xff
	}
	if n, err := unix.IoctlGetInt(fd, jsiocgButtons); err == nil {
		d.buttons = n & 0xff
	}
	if name, err := deviceName(fd); err == nil && name != "" {
		d.name = name
	}
	return d, nil
}

func deviceName(fd int) (string, error) {
	buf := make([]byte, jsNameLen)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(jsiocgName(len(buf))), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

// Path returns the device node path.
func (d *Device) Path() string { return d.path }

// Name returns the driver-reported controller name.
func (d *Device) Name() string { return d.name }

// Counts returns the raw number of axes and buttons reported by the driver.
func (d *Device) Counts() (axes, buttons int) { return d.axes, d.buttons }

// Drain reads every pending event and folds it into the device state.
// It returns the number of events read. An error means the device is gone.
func (d *Device) Drain() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fd < 0 {
		return 0, unix.EBADF
	}

	total := 0
	for {
		n, err := unix.Read(d.fd, d.buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				return total, nil
			}
			return total, fmt.Errorf("read %s: %w", d.path, err)
		}
		if n == 0 {
			return total, nil
		}
		for off := 0; off+EventSize <= n; off += EventSize {
			ev, err := DecodeEvent(d.buf[off : off+EventSize])
			if err != nil {
				break
			}
			d.state.apply(ev)
			total++
		}
		if n < len(d.buf) {
			return total, nil
		}
	}
}

// Snapshot returns the device as a standard-layout gamepad.
func (d *Device) Snapshot(index int) entity.GamepadState {
	d.mu.Lock()
	defer d.mu.Unlock()

	buttons, axes := d.state.snapshot()
	return entity.GamepadState{
		Index:     index,
		ID:        d.name,
		Connected: d.fd >= 0,
		Buttons:   buttons,
		Axes:      axes,
	}
}

// Close releases the file descriptor.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}
