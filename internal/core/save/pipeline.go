// Package save is the serialization pipeline of the save system: it picks the
// encoding, applies the tag-prefix convention, and degrades to default values
// instead of failing when a payload cannot be decoded.
package save

import (
	"strings"

	"github.com/scenekit/scenekit/internal/core/observability/log"
	"github.com/scenekit/scenekit/internal/core/save/format"
)

// Pipeline serializes and deserializes payloads with an explicitly configured
// active handler. The active handler is plain state with single-writer
// discipline: Reconfigure must not race a serialize or deserialize in flight.
type Pipeline struct {
	registry *format.Registry
	active   format.Handler
	log      log.Log
}

// NewPipeline builds a pipeline over the built-in encodings with the given
// active tag. An unknown tag falls back to XML, the oldest encoding and the
// one every legacy save predates.
func NewPipeline(activeTag string, logger log.Log) *Pipeline {
	registry := format.Default()

	if !format.IsValidTag(activeTag) {
		if activeTag != "" {
			logger.Warn("unknown save format requested, falling back to XML",
				log.String("format", activeTag))
		}
		activeTag = format.TagXML
	}

	return &Pipeline{
		registry: registry,
		active:   registry.Get(activeTag),
		log:      logger,
	}
}

// Reconfigure switches the active encoding. Existing files stay loadable
// through tag detection and XML sniffing.
func (p *Pipeline) Reconfigure(tag string) {
	if !format.IsValidTag(tag) {
		p.log.Warn("ignoring switch to unknown save format", log.String("format", tag))
		return
	}
	p.active = p.registry.Get(tag)
}

// ActiveTag returns the tag of the currently configured encoding.
func (p *Pipeline) ActiveTag() string {
	return p.active.Tag()
}

// Handler returns the registered handler for a tag.
func (p *Pipeline) Handler(tag string) format.Handler {
	return p.registry.Get(tag)
}

// SerializeObject renders v with the active encoding. When addTag is set and
// the payload is non-empty, the handler's tag is prefixed so the matching
// decoder can be picked on load. Failures degrade to "" with an advisory log.
func SerializeObject[T any](p *Pipeline, v T, addTag bool) string {
	raw, err := p.active.Marshal(v)
	if err != nil {
		p.log.Error("payload could not be serialized",
			log.String("format", p.active.Tag()), log.Error(err))
		return ""
	}

	payload := string(raw)
	if payload == "" {
		return ""
	}
	if addTag {
		return p.active.Tag() + payload
	}
	return payload
}

// DeserializeObject decodes data into a T. Selection order: XML-shaped
// content always goes to the XML handler, whatever is configured, because
// saves may predate a format switch; everything else uses the active handler.
// The selected handler's own tag prefix, if present, is stripped before
// decoding. Empty data and decode failures both yield T's zero value.
func DeserializeObject[T any](p *Pipeline, data string) T {
	var zero T
	if data == "" {
		return zero
	}

	handler := p.selectHandler(data)
	payload := strings.TrimPrefix(data, handler.Tag())

	var out T
	if err := handler.Unmarshal([]byte(payload), &out); err != nil {
		p.log.Warn("discarding payload that does not decode",
			log.String("format", handler.Tag()), log.Error(err))
		return zero
	}
	return out
}

func (p *Pipeline) selectHandler(data string) format.Handler {
	if format.LooksLikeXML(data) {
		return p.registry.Get(format.TagXML)
	}
	return p.active
}
