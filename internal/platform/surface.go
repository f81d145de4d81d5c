package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"sync"
)

// ErrAlreadyRunning indicates another process has already mounted the surface.
var ErrAlreadyRunning = errors.New("surface already mounted")

const (
	surfacePortMin = 20000
	surfacePortMax = 39999
)

// SurfaceGuard keeps a display surface mounted by a single process. The claim
// is a localhost listener on a port derived from the surface identifier, so
// it disappears with the process even after a crash.
type SurfaceGuard struct {
	surfaceID string
	address   string

	mu       sync.Mutex
	listener net.Listener
}

// AcquireSurface claims the surface with the given identifier.
func AcquireSurface(surfaceID string) (*SurfaceGuard, error) {
	address := net.JoinHostPort("127.0.0.1", fmt.Sprint(surfacePort(surfaceID)))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAlreadyRunning, surfaceID, err)
	}
	return &SurfaceGuard{
		surfaceID: surfaceID,
		address:   address,
		listener:  listener,
	}, nil
}

// Release unmounts the surface. Later calls are no-ops.
func (guard *SurfaceGuard) Release() error {
	if guard == nil {
		return nil
	}
	guard.mu.Lock()
	listener := guard.listener
	guard.listener = nil
	guard.mu.Unlock()

	if listener == nil {
		return nil
	}
	if err := listener.Close(); err != nil {
		return fmt.Errorf("release surface %s: %w", guard.surfaceID, err)
	}
	return nil
}

// Address returns the bound address.
func (guard *SurfaceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func surfacePort(surfaceID string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(surfaceID))
	rangeSize := uint32(surfacePortMax - surfacePortMin + 1)
	return surfacePortMin + int(hash.Sum32()%rangeSize)
}
