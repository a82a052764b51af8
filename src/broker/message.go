package broker

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"typedkafka/src/codec"
)

// Header is one record header key/value pair.
type Header struct {
	Key   string
	Value []byte
}

// Message is a typed read-only view over one received record together with
// the topic binding it arrived through. Payload decoding is deferred until
// Payload is called, so callers that only need metadata never pay the
// decode cost.
type Message[P any] struct {
	record *kgo.Record
	topic  Topic[P]
	codec  codec.Codec
}

// Key returns the record key bytes, or nil when the record was produced
// without a key.
func (m *Message[P]) Key() []byte { return m.record.Key }

// Payload decodes the record value into the topic's payload type. A record
// with no value returns ErrNoPayload; bytes that do not decode return a
// *CodecError. The two cases are never conflated.
func (m *Message[P]) Payload() (P, error) {
	var p P
	if m.record.Value == nil {
		return p, ErrNoPayload
	}
	if err := m.codec.Unmarshal(m.record.Value, &p); err != nil {
		return p, &CodecError{Op: "decode", Topic: m.record.Topic, Err: err}
	}
	return p, nil
}

// Topic returns the topic binding this message arrived through.
func (m *Message[P]) Topic() Topic[P] { return m.topic }

func (m *Message[P]) Partition() int32 { return m.record.Partition }

func (m *Message[P]) Offset() int64 { return m.record.Offset }

func (m *Message[P]) Timestamp() time.Time { return m.record.Timestamp }

// Headers returns the record headers, or nil when there are none.
func (m *Message[P]) Headers() []Header {
	if len(m.record.Headers) == 0 {
		return nil
	}
	hs := make([]Header, len(m.record.Headers))
	for i, h := range m.record.Headers {
		hs[i] = Header{Key: h.Key, Value: h.Value}
	}
	return hs
}
