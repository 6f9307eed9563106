package cloudevent

import (
	"strings"

	"github.com/alecthomas/cloudevent/internal/strcase"
	"go.jetify.com/typeid/v2"
)

const maxIDPrefixLength = 63

// NewID returns a unique event ID for the given event type.
//
// The ID is a [TypeID](https://github.com/jetify-com/typeid) prefixed with the snake_cased event type, eg.
// "com.example.WidgetCreated" -> "com_example_widget_created_01h455vb4pex5vsknk084sn02q".
func NewID(eventType string) string {
	return typeid.MustGenerate(idPrefix(eventType)).String()
}

// idPrefix converts an event type into a valid TypeID prefix, which may only contain [a-z_], must start and end
// with a letter, and is at most 63 characters long.
func idPrefix(eventType string) string {
	words := []string{}
	for _, word := range strcase.Split(eventType) {
		word = strings.ToLower(word)
		if strings.Trim(word, "abcdefghijklmnopqrstuvwxyz") != "" {
			continue
		}
		words = append(words, word)
	}
	prefix := strings.Join(words, "_")
	if len(prefix) > maxIDPrefixLength {
		prefix = strings.TrimRight(prefix[:maxIDPrefixLength], "_")
	}
	return prefix
}
