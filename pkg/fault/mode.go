package fault

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// Mode selects what happens between raising a Signal and termination.
type Mode int32

const (
	Unwind Mode = iota
	Abort
)

var ErrModeLocked = errors.New("fault mode already configured")

var (
	mode       atomic.Int32
	modeMu     sync.Mutex
	modeLocked bool
)

func (m Mode) String() string {
	switch m {
	case Unwind:
		return "unwind"
	case Abort:
		return "abort"
	default:
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
}

// ParseMode accepts "unwind" or "abort" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unwind":
		return Unwind, nil
	case "abort":
		return Abort, nil
	default:
		return Unwind, fmt.Errorf("unknown fault mode %q (want unwind or abort)", s)
	}
}

// SetMode configures the process-wide mode. The first call wins; a later call
// asking for a different mode returns ErrModeLocked.
func SetMode(m Mode) error {
	if m != Unwind && m != Abort {
		return fmt.Errorf("invalid fault mode %s", m)
	}

	modeMu.Lock()
	defer modeMu.Unlock()

	if modeLocked {
		if cur := Mode(mode.Load()); cur != m {
			return fmt.Errorf("%w: %s", ErrModeLocked, cur)
		}
		return nil
	}
	mode.Store(int32(m))
	modeLocked = true
	return nil
}

func CurrentMode() Mode {
	return Mode(mode.Load())
}
