package cloudevent

import (
	"github.com/alecthomas/errors"
)

var (
	// ErrInvalidArgument is returned when a required attribute is missing or empty, an optional attribute is
	// present but empty, or a nil publisher is set.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalState is returned by [Event.SetPublisher] when the publisher is already known.
	//
	// It indicates a programming error and should not be retried.
	ErrIllegalState = errors.New("illegal state")
)

func invalidArgument(attribute, reason string) error {
	return errors.Errorf("%w: %s: %s", ErrInvalidArgument, attribute, reason)
}
