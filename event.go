// Package cloudevent models CloudEvents v0.1 (https://github.com/cloudevents/spec/tree/v0.1).
//
// An [Event] is validated when it is constructed and immutable afterwards, with the exception of its
// publisher, which may be attached exactly once by whoever relays the event.
package cloudevent

import (
	"net/url"
	"sync/atomic"
	"time"

	"github.com/alecthomas/errors"
)

// Event is a single CloudEvent.
//
// Events are safe for concurrent use.
type Event struct {
	publisher atomic.Pointer[publisherRef]

	specVersion         string
	eventType           string
	eventTypeVersion    string
	hasEventTypeVersion bool
	source              url.URL
	eventID             string
	eventTime           time.Time
	extensions          Extensions
	contentType         string
	schemaURL           *url.URL
	data                any
}

type publisherRef struct{ value any }

// New creates an [Event] whose publisher is not yet known.
//
// specVersion, eventType and eventID must not be empty, and source must not be nil. Optional attributes are
// supplied as [Option]s.
func New(specVersion, eventType string, source *url.URL, eventID string, options ...Option) (*Event, error) {
	return newEvent(nil, specVersion, eventType, source, eventID, options)
}

// NewWithPublisher creates an [Event] published by publisher.
//
// A nil publisher is equivalent to calling [New].
func NewWithPublisher(publisher any, specVersion, eventType string, source *url.URL, eventID string, options ...Option) (*Event, error) {
	return newEvent(publisher, specVersion, eventType, source, eventID, options)
}

func newEvent(publisher any, specVersion, eventType string, source *url.URL, eventID string, options []Option) (*Event, error) {
	opts := &eventOptions{}
	optErr := WithOptions(options...)(opts)
	if specVersion == "" {
		return nil, invalidArgument(AttrCloudEventsVersion, "must not be empty")
	}
	if eventType == "" {
		return nil, invalidArgument(AttrEventType, "must not be empty")
	}
	if opts.hasEventTypeVersion && opts.eventTypeVersion == "" {
		return nil, invalidArgument(AttrEventTypeVersion, "must not be empty if present")
	}
	if source == nil {
		return nil, invalidArgument(AttrSource, "is required")
	}
	if eventID == "" {
		return nil, invalidArgument(AttrEventID, "must not be empty")
	}
	if optErr != nil {
		return nil, errors.WithStack(optErr)
	}
	eventTime := opts.eventTime
	if eventTime.IsZero() {
		eventTime = time.Now().UTC()
	}
	extensions := opts.extensions
	if extensions.Len() == 0 {
		extensions = emptyExtensions
	}
	e := &Event{
		specVersion:         specVersion,
		eventType:           eventType,
		eventTypeVersion:    opts.eventTypeVersion,
		hasEventTypeVersion: opts.hasEventTypeVersion,
		source:              *source,
		eventID:             eventID,
		eventTime:           eventTime,
		extensions:          extensions,
		contentType:         opts.contentType,
		schemaURL:           cloneURL(opts.schemaURL),
		data:                opts.data,
	}
	if publisher != nil {
		e.publisher.Store(&publisherRef{value: publisher})
	}
	return e, nil
}

// Publisher returns the entity that published or relayed the event, or nil if it is not known.
//
// The publisher is local to this process and is not a CloudEvents attribute.
func (e *Event) Publisher() any {
	if ref := e.publisher.Load(); ref != nil {
		return ref.value
	}
	return nil
}

// HasPublisher returns true if the publisher is known.
func (e *Event) HasPublisher() bool { return e.publisher.Load() != nil }

// SetPublisher attaches a publisher to an event whose publisher is not yet known.
//
// Returns [ErrInvalidArgument] if publisher is nil, and [ErrIllegalState] if a publisher is already known.
// When called concurrently, exactly one caller succeeds.
func (e *Event) SetPublisher(publisher any) error {
	if publisher == nil {
		return errors.Errorf("%w: publisher must not be nil", ErrInvalidArgument)
	}
	if !e.publisher.CompareAndSwap(nil, &publisherRef{value: publisher}) {
		return errors.Errorf("%w: publisher is already set", ErrIllegalState)
	}
	return nil
}

// SpecVersion returns the version of the CloudEvents specification the event uses.
func (e *Event) SpecVersion() string { return e.specVersion }

// EventType returns the type of the occurrence, eg. "com.example.widget.created".
func (e *Event) EventType() string { return e.eventType }

// EventTypeVersion returns the version of the event type and whether it is present.
func (e *Event) EventTypeVersion() (string, bool) { return e.eventTypeVersion, e.hasEventTypeVersion }

// Source returns a copy of the URI identifying the event producer.
func (e *Event) Source() *url.URL { return cloneURL(&e.source) }

// EventID returns the identifier of the event.
func (e *Event) EventID() string { return e.eventID }

// EventTime returns the time of the occurrence, or the time the event was constructed if none was given.
func (e *Event) EventTime() time.Time { return e.eventTime }

// Extensions returns the extension attributes.
func (e *Event) Extensions() Extensions { return e.extensions }

// ContentType returns the media type of the event data, or "" if absent.
func (e *Event) ContentType() string { return e.contentType }

// SchemaURL returns a copy of the schema URL, or nil if absent.
func (e *Event) SchemaURL() *url.URL { return cloneURL(e.schemaURL) }

// Data returns the event payload.
func (e *Event) Data() any { return e.data }

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
