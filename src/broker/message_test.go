package broker

import (
	"errors"
	"testing"

	"github.com/twmb/franz-go/pkg/kgo"

	"typedkafka/src/codec"
)

func TestPayloadAbsentIsNotDecodeError(t *testing.T) {
	msg := &Message[update]{
		record: &kgo.Record{Topic: "session:abc", Value: nil},
		topic:  sessionTopic{id: "abc"},
		codec:  codec.JSON{},
	}

	_, err := msg.Payload()
	if !errors.Is(err, ErrNoPayload) {
		t.Fatalf("Expected ErrNoPayload, got %v", err)
	}
	var ce *CodecError
	if errors.As(err, &ce) {
		t.Error("Expected no-payload to be distinct from a decode error")
	}
}

func TestPayloadDecodeFailureIsCodecError(t *testing.T) {
	msg := &Message[update]{
		record: &kgo.Record{Topic: "session:abc", Value: []byte("not json")},
		topic:  sessionTopic{id: "abc"},
		codec:  codec.JSON{},
	}

	_, err := msg.Payload()
	if err == nil {
		t.Fatal("Expected decode failure to surface")
	}
	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *CodecError, got %T: %v", err, err)
	}
	if ce.Op != "decode" {
		t.Errorf("Expected op decode, got %s", ce.Op)
	}
	if ce.Topic != "session:abc" {
		t.Errorf("Expected topic session:abc, got %s", ce.Topic)
	}
	if errors.Is(err, ErrNoPayload) {
		t.Error("Expected decode failure to be distinct from no-payload")
	}
}

func TestPayloadDecodeIsLazy(t *testing.T) {
	// metadata reads must not touch the payload bytes
	msg := &Message[update]{
		record: &kgo.Record{Topic: "session:abc", Value: []byte("not json"), Partition: 1, Offset: 7},
		topic:  sessionTopic{id: "abc"},
		codec:  codec.JSON{},
	}

	if msg.Partition() != 1 || msg.Offset() != 7 {
		t.Errorf("Expected metadata 1/7, got %d/%d", msg.Partition(), msg.Offset())
	}
}

func TestHeadersEmpty(t *testing.T) {
	msg := &Message[update]{
		record: &kgo.Record{Topic: "session:abc"},
		topic:  sessionTopic{id: "abc"},
		codec:  codec.JSON{},
	}
	if msg.Headers() != nil {
		t.Errorf("Expected nil headers, got %v", msg.Headers())
	}
}

func TestTopicCopiesAreIdentical(t *testing.T) {
	a := sessionTopic{id: "abc"}
	b := a
	if a.TopicName() != b.TopicName() {
		t.Errorf("Expected duplicated topics to resolve identically: %s vs %s", a.TopicName(), b.TopicName())
	}
}
