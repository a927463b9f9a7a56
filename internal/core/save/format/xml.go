package format

import (
	"encoding/xml"
	"fmt"
)

// XML encodes payloads with encoding/xml. Marshal emits the standard
// declaration so that untagged legacy content stays recognizable by sniffing.
type XML struct{}

var _ Handler = XML{}

func (XML) Tag() string {
	return TagXML
}

func (XML) Marshal(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("xml marshal: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func (XML) Unmarshal(data []byte, v any) error {
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("xml: %w: %v", ErrMalformed, err)
	}
	return nil
}
