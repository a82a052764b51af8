package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"typedkafka/src/codec"
)

type update struct {
	Kind string `json:"kind"`
}

// sessionTopic resolves its name from instance state.
type sessionTopic struct {
	id string
}

func (t sessionTopic) TopicName() string { return fmt.Sprintf("session:%s", t.id) }

func (sessionTopic) PayloadType() update { return update{} }

type fakeProduceClient struct {
	records []*kgo.Record
	err     error
	closed  bool
}

func (f *fakeProduceClient) ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	f.records = append(f.records, rs...)
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		results = append(results, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return results
}

func (f *fakeProduceClient) Close() { f.closed = true }

func newTestProducer(client produceClient) *Producer {
	return &Producer{client: client, codec: codec.JSON{}}
}

func TestSendEncodesAndPublishes(t *testing.T) {
	fake := &fakeProduceClient{}
	p := newTestProducer(fake)

	topic := sessionTopic{id: "abc"}
	err := Send(context.Background(), p, topic, update{Kind: "thing1"}, nil, 5*time.Second)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(fake.records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(fake.records))
	}
	rec := fake.records[0]
	if rec.Topic != "session:abc" {
		t.Errorf("Expected topic session:abc, got %s", rec.Topic)
	}
	if rec.Key != nil {
		t.Errorf("Expected no key, got %q", rec.Key)
	}

	var got update
	if err := json.Unmarshal(rec.Value, &got); err != nil {
		t.Fatalf("Record value is not JSON: %v", err)
	}
	if got.Kind != "thing1" {
		t.Errorf("Expected payload thing1, got %s", got.Kind)
	}
}

func TestSendWithKey(t *testing.T) {
	fake := &fakeProduceClient{}
	p := newTestProducer(fake)

	err := Send(context.Background(), p, sessionTopic{id: "abc"}, update{Kind: "k"}, []byte("user:1"), 0)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if string(fake.records[0].Key) != "user:1" {
		t.Errorf("Expected key user:1, got %q", fake.records[0].Key)
	}
}

func TestSendEncodeFailureIsCodecError(t *testing.T) {
	fake := &fakeProduceClient{}
	p := newTestProducer(fake)

	err := Send(context.Background(), p, chanTopic{}, make(chan int), nil, 0)
	if err == nil {
		t.Fatal("Expected encode failure")
	}
	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *CodecError, got %T: %v", err, err)
	}
	if ce.Op != "encode" {
		t.Errorf("Expected op encode, got %s", ce.Op)
	}
	if len(fake.records) != 0 {
		t.Error("Expected nothing published after encode failure")
	}
}

type chanTopic struct{}

func (chanTopic) TopicName() string { return "chans" }

func (chanTopic) PayloadType() chan int { return nil }

func TestSendBrokerFailureIsNotCodecError(t *testing.T) {
	fake := &fakeProduceClient{err: errors.New("not leader for partition")}
	p := newTestProducer(fake)

	err := Send(context.Background(), p, sessionTopic{id: "abc"}, update{Kind: "x"}, nil, time.Second)
	if err == nil {
		t.Fatal("Expected broker failure to surface")
	}
	var ce *CodecError
	if errors.As(err, &ce) {
		t.Errorf("Expected a broker error, got codec error %v", err)
	}
	if !errors.Is(err, fake.err) {
		t.Errorf("Expected wrapped broker error, got %v", err)
	}
}

func TestProduceConsumeRoundTrip(t *testing.T) {
	fake := &fakeProduceClient{}
	p := newTestProducer(fake)
	topic := sessionTopic{id: "abc"}

	want := update{Kind: "thing1"}
	if err := Send(context.Background(), p, topic, want, nil, time.Second); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	msg := &Message[update]{record: fake.records[0], topic: topic, codec: codec.JSON{}}
	got, err := msg.Payload()
	if err != nil {
		t.Fatalf("Payload failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if msg.Topic().TopicName() != topic.TopicName() {
		t.Errorf("Expected topic %s, got %s", topic.TopicName(), msg.Topic().TopicName())
	}
	if msg.Key() != nil {
		t.Errorf("Expected no key, got %q", msg.Key())
	}
}

func TestProducerClose(t *testing.T) {
	fake := &fakeProduceClient{}
	p := newTestProducer(fake)
	p.Close()
	if !fake.closed {
		t.Error("Expected Close to reach the client")
	}
}
