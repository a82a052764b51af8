package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"typedkafka/src/codec"
	"typedkafka/src/config"
)

// produceClient is the slice of the raw client the producer uses. Production
// code always holds a *kgo.Client; tests substitute fakes.
type produceClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// Producer publishes typed payloads. It is stateless with respect to topics
// — the topic is supplied per Send call — and safe for concurrent use from
// any number of goroutines.
type Producer struct {
	client produceClient
	codec  codec.Codec
}

// ProducerOpt adjusts producer construction.
type ProducerOpt func(*producerOptions)

type producerOptions struct {
	codec  codec.Codec
	logger kgo.Logger
}

// WithProducerCodec replaces the default JSON codec.
func WithProducerCodec(c codec.Codec) ProducerOpt {
	return func(o *producerOptions) { o.codec = c }
}

// WithProducerLogger routes the raw client's internal logging.
func WithProducerLogger(l kgo.Logger) ProducerOpt {
	return func(o *producerOptions) { o.logger = l }
}

// NewProducer constructs the raw producer client from cfg. A structurally
// invalid configuration (unknown option, malformed value, bad bootstrap
// list) fails here; construction failures are fatal to the call and are not
// retried by this layer.
func NewProducer(cfg config.ClientConfig, opts ...ProducerOpt) (*Producer, error) {
	po := producerOptions{codec: codec.JSON{}}
	for _, opt := range opts {
		opt(&po)
	}
	kopts, err := cfg.ClientOpts()
	if err != nil {
		return nil, fmt.Errorf("broker: producer config: %w", err)
	}
	if po.logger != nil {
		kopts = append(kopts, kgo.WithLogger(po.logger))
	}
	client, err := kgo.NewClient(kopts...)
	if err != nil {
		return nil, fmt.Errorf("broker: create producer client: %w", err)
	}
	return &Producer{client: client, codec: po.codec}, nil
}

// Close releases the underlying client.
func (p *Producer) Close() { p.client.Close() }

// Send encodes payload with the producer's codec and publishes it under
// topic's resolved name, blocking until the broker acknowledges the record.
// A nil key leaves partitioning to the broker default. A positive timeout
// bounds the wait; zero relies on ctx alone. Encode failures surface as
// *CodecError and broker failures as wrapped client errors — the two are
// distinct and neither is swallowed.
//
// Send is a function rather than a method because Go methods cannot
// introduce type parameters.
func Send[P any](ctx context.Context, p *Producer, topic Topic[P], payload P, key []byte, timeout time.Duration) error {
	name := topic.TopicName()
	value, err := p.codec.Marshal(payload)
	if err != nil {
		return &CodecError{Op: "encode", Topic: name, Err: err}
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	rec := &kgo.Record{Topic: name, Key: key, Value: value}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("broker: send to %q: %w", name, err)
	}
	return nil
}
