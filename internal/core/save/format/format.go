// Package format holds the pluggable save-file encodings. Each handler turns
// a payload into text and back and identifies itself with a short tag that is
// prefixed onto tagged save files.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// Tags are fixed literals; they appear verbatim at the head of tagged save
// files and must never change once saves exist in the wild.
const (
	TagXML    = "XML"
	TagJSON   = "Json"
	TagBinary = "Binary"
)

var (
	ErrMalformed     = errors.New("malformed payload")
	ErrUnknownFormat = errors.New("unknown format")
)

// Handler is one save-file encoding.
type Handler interface {
	// Tag returns the literal identifying this encoding.
	Tag() string

	// Marshal renders v as payload text. An empty result means "nothing to
	// serialize", never an error.
	Marshal(v any) ([]byte, error)

	// Unmarshal populates v from payload text. Content that is not valid for
	// this encoding fails with an error wrapping ErrMalformed.
	Unmarshal(data []byte, v any) error
}

// Registry maps tags to handlers. Unknown tags resolve to a handler that
// fails with a classified error instead of panicking, so lookups never need a
// presence check.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{
		handlers: make(map[string]Handler, len(handlers)),
	}
	for _, h := range handlers {
		r.Register(h)
	}
	return r
}

func (r *Registry) Register(h Handler) {
	r.handlers[h.Tag()] = h
}

func (r *Registry) Get(tag string) Handler {
	h := r.handlers[tag]
	if h == nil {
		return emptyHandler{tag: tag}
	}
	return h
}

// Default returns a registry with the three built-in encodings.
func Default() *Registry {
	return NewRegistry(XML{}, JSON{}, Binary{})
}

// LooksLikeXML reports whether data is unambiguously XML-shaped. Legacy saves
// written before the tagging convention carry no tag, so XML content is
// recognized by its declaration instead.
func LooksLikeXML(data string) bool {
	return strings.Contains(data, "<?xml") || strings.Contains(data, "xml version")
}

// KnownTag returns the format tag data starts with, if any.
func KnownTag(data string) (string, bool) {
	for _, tag := range []string{TagXML, TagJSON, TagBinary} {
		if strings.HasPrefix(data, tag) {
			return tag, true
		}
	}
	return "", false
}

// IsValidTag reports whether tag names one of the built-in encodings exactly.
// Unlike KnownTag it is meant for configuration values, not payloads.
func IsValidTag(tag string) bool {
	switch tag {
	case TagXML, TagJSON, TagBinary:
		return true
	}
	return false
}

// emptyHandler stands in for an unregistered tag and fails every operation
// with a classified error.
type emptyHandler struct {
	tag string
}

func (h emptyHandler) Tag() string {
	return h.tag
}

func (h emptyHandler) Marshal(any) ([]byte, error) {
	return nil, fmt.Errorf("%w: %q is not registered", ErrUnknownFormat, h.tag)
}

func (h emptyHandler) Unmarshal([]byte, any) error {
	return fmt.Errorf("%w: %q is not registered", ErrUnknownFormat, h.tag)
}
