package cloudevent

import (
	"log/slog"
	"net/url"

	"github.com/alecthomas/errors"
	"github.com/alecthomas/kong"
)

// Config for a [Producer].
type Config struct {
	SpecVersion string `help:"CloudEvents specification version to stamp on events." default:"0.1"`
	Source      string `help:"URI identifying the producer of events, eg. /widgets." placeholder:"URI"`
	ContentType string `help:"Default media type of event data, eg. application/json."`
}

// DefaultConfig creates a default configuration for a [Producer].
//
// Source has no default and must be set.
func DefaultConfig() Config {
	config := Config{}
	err := kong.ApplyDefaults(&config)
	if err != nil {
		panic(err)
	}
	return config
}

// Producer creates events from a single source.
type Producer struct {
	logger    *slog.Logger
	config    Config
	source    *url.URL
	publisher any
}

// NewProducer creates a [Producer].
//
// Events created by the producer are attributed to publisher, which may be nil if unknown.
func NewProducer(logger *slog.Logger, config Config, publisher any) (*Producer, error) {
	if config.SpecVersion == "" {
		return nil, invalidArgument(AttrCloudEventsVersion, "must not be empty")
	}
	if config.Source == "" {
		return nil, invalidArgument(AttrSource, "is required")
	}
	source, err := url.Parse(config.Source)
	if err != nil {
		return nil, invalidArgument(AttrSource, err.Error())
	}
	logger.Debug("Created producer",
		"spec-version", config.SpecVersion,
		"source", source.String(),
		"content-type", config.ContentType,
	)
	return &Producer{
		logger:    logger,
		config:    config,
		source:    source,
		publisher: publisher,
	}, nil
}

// New creates an [Event] of the given type carrying data.
//
// The event is given a unique ID from [NewID], the producer's source, spec version, publisher and default
// content type. Options are applied after the producer's defaults and so take precedence.
func (p *Producer) New(eventType string, data any, options ...Option) (*Event, error) {
	defaults := []Option{WithData(data)}
	if p.config.ContentType != "" {
		defaults = append(defaults, WithContentType(p.config.ContentType))
	}
	event, err := NewWithPublisher(p.publisher, p.config.SpecVersion, eventType, p.source, NewID(eventType), append(defaults, options...)...)
	if err != nil {
		return nil, errors.Errorf("failed to create %q event: %w", eventType, err)
	}
	p.logger.Debug("Created event", "event", event)
	return event, nil
}
