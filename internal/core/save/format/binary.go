package format

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"fmt"
)

// Binary encodes payloads with gob and base64-armors the stream, since save
// files travel through the same text channels as the other encodings.
type Binary struct{}

var _ Handler = Binary{}

func (Binary) Tag() string {
	return TagBinary
}

func (Binary) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("gob encode: %w", err)
	}

	out := make([]byte, base64.StdEncoding.EncodedLen(buf.Len()))
	base64.StdEncoding.Encode(out, buf.Bytes())
	return out, nil
}

func (Binary) Unmarshal(data []byte, v any) error {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(raw, data)
	if err != nil {
		return fmt.Errorf("binary: %w: %v", ErrMalformed, err)
	}

	if err := gob.NewDecoder(bytes.NewReader(raw[:n])).Decode(v); err != nil {
		return fmt.Errorf("binary: %w: %v", ErrMalformed, err)
	}
	return nil
}
