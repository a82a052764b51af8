// Package codec defines the payload encode/decode seam for typed topics.
package codec

import "encoding/json"

// Codec converts payload values to and from their wire bytes. An
// implementation must round-trip: unmarshalling marshalled bytes yields a
// value equal to the original.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// JSON is the default codec.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) Name() string { return "json" }
