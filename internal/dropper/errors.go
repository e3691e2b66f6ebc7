package dropper

import (
	"errors"
	"fmt"
)

// ErrInitialization matches every InitError via errors.Is.
var ErrInitialization = errors.New("dropper initialization failed")

// ErrSampleOutOfRange is returned with a transparent-black sample when the
// pointer resolves outside the display surface. It is not fatal.
var ErrSampleOutOfRange = errors.New("sample outside display surface")

// InitError reports a missing or unusable startup dependency: a view handle,
// the surface placer, an invalid configuration or an unreadable asset.
// Startup must abort when one is returned.
type InitError struct {
	What string
	Err  error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", ErrInitialization, e.What)
	}
	return fmt.Sprintf("%v: %s: %v", ErrInitialization, e.What, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

func (e *InitError) Is(target error) bool { return target == ErrInitialization }
