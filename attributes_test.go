package cloudevent

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/cloudevent/internal/logtest"
)

func attributeNames(e *Event) []string {
	names := []string{}
	for name := range e.Attributes() {
		names = append(names, name)
	}
	return names
}

func TestAttributesOmitsAbsentFields(t *testing.T) {
	e, err := NewWithPublisher("relay", SpecVersion01, "com.example.widget.created", mustParseURL(t, "/widgets/42"), "1234")
	assert.NoError(t, err)
	assert.Equal(t, []string{
		AttrCloudEventsVersion,
		AttrEventType,
		AttrSource,
		AttrEventID,
		AttrEventTime,
	}, attributeNames(e))
}

func TestAttributesAllFields(t *testing.T) {
	eventTime := time.Date(2018, 4, 5, 17, 31, 0, 0, time.UTC)
	e, err := New(SpecVersion01, "com.example.widget.created", mustParseURL(t, "/widgets/42"), "1234",
		WithEventTypeVersion("1.0"),
		WithEventTime(eventTime),
		WithExtension("traceid", "abc"),
		WithContentType("application/json"),
		WithSchemaURL(mustParseURL(t, "https://example.com/schema.json")),
		WithData(map[string]any{"name": "sprocket"}),
	)
	assert.NoError(t, err)
	assert.NoError(t, e.SetPublisher("relay"))
	assert.Equal(t, []string{
		AttrCloudEventsVersion,
		AttrEventType,
		AttrEventTypeVersion,
		AttrSource,
		AttrEventID,
		AttrEventTime,
		AttrExtensions,
		AttrContentType,
		AttrSchemaURL,
		AttrData,
	}, attributeNames(e))

	values := map[string]any{}
	for name, value := range e.Attributes() {
		values[name] = value
	}
	assert.Equal[any](t, "1.0", values[AttrEventTypeVersion])
	assert.Equal[any](t, eventTime, values[AttrEventTime])
	assert.Equal(t, "/widgets/42", values[AttrSource].(*url.URL).String())
	assert.Equal(t, []string{"traceid"}, values[AttrExtensions].(Extensions).Keys())
	assert.Equal[any](t, map[string]any{"name": "sprocket"}, values[AttrData])
}

func TestAttributesStopsEarly(t *testing.T) {
	e, err := New(SpecVersion01, "com.example.widget.created", mustParseURL(t, "/widgets/42"), "1234", WithData("x"))
	assert.NoError(t, err)
	names := []string{}
	for name := range e.Attributes() {
		names = append(names, name)
		if name == AttrSource {
			break
		}
	}
	assert.Equal(t, []string{AttrCloudEventsVersion, AttrEventType, AttrSource}, names)
}

func TestLogValue(t *testing.T) {
	logger, buf := logtest.NewForTesting()
	e, err := New(SpecVersion01, "com.example.widget.created", mustParseURL(t, "/widgets/42"), "1234",
		WithEventTime(time.Date(2018, 4, 5, 17, 31, 0, 0, time.UTC)),
		WithExtension("traceid", "abc"),
		WithSchemaURL(mustParseURL(t, "https://example.com/schema.json")),
		WithData("secret-payload"),
	)
	assert.NoError(t, err)
	logger.Info("Received event", "event", e)
	output := buf.String()
	assert.Contains(t, output, "event.cloudEventsVersion=0.1")
	assert.Contains(t, output, "event.eventType=com.example.widget.created")
	assert.Contains(t, output, "event.source=/widgets/42")
	assert.Contains(t, output, "event.eventID=1234")
	assert.Contains(t, output, "event.eventTime=2018-04-05T17:31:00.000Z")
	assert.Contains(t, output, "event.extensions.traceid=abc")
	assert.Contains(t, output, "event.schemaURL=https://example.com/schema.json")
	assert.False(t, strings.Contains(output, "secret-payload"), "data should not be logged: %s", output)
	assert.False(t, strings.Contains(output, "publisher"), "unknown publisher should not be logged: %s", output)

	buf.Reset()
	assert.NoError(t, e.SetPublisher("relay"))
	logger.Info("Received event", "event", e)
	assert.Contains(t, buf.String(), "event.publisher=relay")
}
