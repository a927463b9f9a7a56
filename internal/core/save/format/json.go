package format

import (
	"encoding/json"
	"fmt"
)

// JSON encodes payloads with encoding/json.
type JSON struct{}

var _ Handler = JSON{}

func (JSON) Tag() string {
	return TagJSON
}

func (JSON) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

func (JSON) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json: %w: %v", ErrMalformed, err)
	}
	return nil
}
