package cloudevent

import (
	"net/url"
	"time"

	"github.com/alecthomas/errors"
)

type eventOptions struct {
	eventTypeVersion    string
	hasEventTypeVersion bool
	eventTime           time.Time
	extensions          Extensions
	contentType         string
	schemaURL           *url.URL
	data                any
}

// Option configures the optional attributes of an [Event].
type Option func(*eventOptions) error

// WithEventTypeVersion sets the version of the event type.
//
// If given, the version must not be empty.
func WithEventTypeVersion(version string) Option {
	return func(o *eventOptions) error {
		o.eventTypeVersion = version
		o.hasEventTypeVersion = true
		return nil
	}
}

// WithEventTime sets the time of the occurrence.
//
// The zero time is treated as absent and the event time will default to the time of construction.
func WithEventTime(t time.Time) Option {
	return func(o *eventOptions) error {
		o.eventTime = t
		return nil
	}
}

// WithExtensions appends extension attributes.
func WithExtensions(ext Extensions) Option {
	return func(o *eventOptions) error {
		merged, err := o.extensions.with(collect(ext))
		if err != nil {
			return errors.WithStack(err)
		}
		o.extensions = merged
		return nil
	}
}

// WithExtensionMap snapshots m into the extension attributes, in key order.
//
// m must not be modified concurrently with construction of the event.
func WithExtensionMap(m map[string]any) Option {
	return func(o *eventOptions) error {
		ext, err := ExtensionsFromMap(m)
		if err != nil {
			return errors.WithStack(err)
		}
		return WithExtensions(ext)(o)
	}
}

// WithExtension appends a single extension attribute.
func WithExtension(key string, value any) Option {
	return func(o *eventOptions) error {
		merged, err := o.extensions.with([]Extension{{Key: key, Value: value}})
		if err != nil {
			return errors.WithStack(err)
		}
		o.extensions = merged
		return nil
	}
}

// WithContentType sets the media type of the event data, eg. "application/json".
func WithContentType(contentType string) Option {
	return func(o *eventOptions) error {
		o.contentType = contentType
		return nil
	}
}

// WithSchemaURL sets a link to the schema the event data adheres to.
func WithSchemaURL(u *url.URL) Option {
	return func(o *eventOptions) error {
		o.schemaURL = u
		return nil
	}
}

// WithData sets the event payload.
//
// The payload is held by reference and never inspected.
func WithData(data any) Option {
	return func(o *eventOptions) error {
		o.data = data
		return nil
	}
}

// WithOptions groups multiple options into one.
func WithOptions(options ...Option) Option {
	return func(o *eventOptions) error {
		for _, opt := range options {
			err := opt(o)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}
}
