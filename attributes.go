package cloudevent

import (
	"fmt"
	"iter"
	"log/slog"
)

// SpecVersion01 is the CloudEvents specification version modelled by this package.
const SpecVersion01 = "0.1"

// Names of the CloudEvents v0.1 attributes.
const (
	AttrCloudEventsVersion = "cloudEventsVersion"
	AttrEventType          = "eventType"
	AttrEventTypeVersion   = "eventTypeVersion"
	AttrSource             = "source"
	AttrEventID            = "eventID"
	AttrEventTime          = "eventTime"
	AttrExtensions         = "extensions"
	AttrContentType        = "contentType"
	AttrSchemaURL          = "schemaURL"
	AttrData               = "data"
)

// Attributes iterates over the CloudEvents attributes that are present on the event, keyed by attribute name.
//
// Values are the same as those returned by the corresponding accessors. Absent optional attributes are
// skipped, as is the publisher, which is not a CloudEvents attribute.
func (e *Event) Attributes() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if !yield(AttrCloudEventsVersion, e.specVersion) || !yield(AttrEventType, e.eventType) {
			return
		}
		if e.hasEventTypeVersion && !yield(AttrEventTypeVersion, e.eventTypeVersion) {
			return
		}
		if !yield(AttrSource, e.Source()) || !yield(AttrEventID, e.eventID) || !yield(AttrEventTime, e.eventTime) {
			return
		}
		if e.extensions.Len() > 0 && !yield(AttrExtensions, e.extensions) {
			return
		}
		if e.contentType != "" && !yield(AttrContentType, e.contentType) {
			return
		}
		if e.schemaURL != nil && !yield(AttrSchemaURL, e.SchemaURL()) {
			return
		}
		if e.data != nil {
			yield(AttrData, e.data)
		}
	}
}

// LogValue implements [slog.LogValuer].
//
// The event data is omitted.
func (e *Event) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 10)
	for name, value := range e.Attributes() {
		switch name {
		case AttrData:
			continue
		case AttrExtensions:
			ext := make([]slog.Attr, 0, e.extensions.Len())
			for key, value := range e.extensions.All() {
				ext = append(ext, slog.Any(key, value))
			}
			attrs = append(attrs, slog.Attr{Key: name, Value: slog.GroupValue(ext...)})
		case AttrSource, AttrSchemaURL:
			attrs = append(attrs, slog.String(name, value.(fmt.Stringer).String()))
		default:
			attrs = append(attrs, slog.Any(name, value))
		}
	}
	if e.HasPublisher() {
		attrs = append(attrs, slog.Any("publisher", e.Publisher()))
	}
	return slog.GroupValue(attrs...)
}
