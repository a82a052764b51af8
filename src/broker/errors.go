package broker

import (
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kerr"
)

// ErrNoPayload reports that a received record carried no value at all. It is
// distinct from a decode failure, which surfaces as a *CodecError.
var ErrNoPayload = errors.New("broker: record has no payload")

// ErrConsumerClosed reports a receive attempt on a closed consumer.
var ErrConsumerClosed = errors.New("broker: consumer is closed")

// CodecError reports a payload that failed to encode or decode.
type CodecError struct {
	Op    string // "encode" or "decode"
	Topic string
	Err   error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("broker: %s payload for topic %q: %v", e.Op, e.Topic, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// AdminError reports a per-topic administrative failure, such as creating a
// topic that already exists. Each topic's result is reported individually,
// never folded into an aggregate pass/fail.
type AdminError struct {
	Topic string
	Err   error
}

func (e *AdminError) Error() string {
	return fmt.Sprintf("broker: admin operation on topic %q: %v", e.Topic, e.Err)
}

func (e *AdminError) Unwrap() error { return e.Err }

// AlreadyExists reports whether the failure was the broker rejecting
// creation of a topic that already exists.
func (e *AdminError) AlreadyExists() bool {
	return errors.Is(e.Err, kerr.TopicAlreadyExists)
}
