package broker

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/twmb/franz-go/pkg/kgo"

	"typedkafka/src/codec"
	"typedkafka/src/config"
)

// pollClient is the slice of the raw client the consumer uses. Production
// code always holds a *kgo.Client; tests substitute fakes.
type pollClient interface {
	PollRecords(ctx context.Context, maxPollRecords int) kgo.Fetches
	Close()
}

// Consumer is bound to exactly one topic, subscribed at construction and
// fixed for the consumer's lifetime; consuming a different topic requires a
// new Consumer. A Consumer owns its subscription exclusively and must not be
// shared across goroutines — use Stream for the steady-state loop.
type Consumer[P any] struct {
	client  pollClient
	topic   Topic[P]
	codec   codec.Codec
	maxPoll int
	pending []*kgo.Record
}

// Result is one element of a consumer stream: a decoded message or the
// error that replaced it. Exactly one field is set.
type Result[P any] struct {
	Msg *Message[P]
	Err error
}

// ConsumerOpt adjusts consumer construction.
type ConsumerOpt func(*consumerOptions)

type consumerOptions struct {
	codec  codec.Codec
	logger kgo.Logger
}

// WithConsumerCodec replaces the default JSON codec.
func WithConsumerCodec(c codec.Codec) ConsumerOpt {
	return func(o *consumerOptions) { o.codec = c }
}

// WithConsumerLogger routes the raw client's internal logging.
func WithConsumerLogger(l kgo.Logger) ConsumerOpt {
	return func(o *consumerOptions) { o.logger = l }
}

// NewConsumer constructs the raw consumer client from cfg and subscribes to
// topic's resolved name. Construction failures are fatal to the call and
// are not retried by this layer.
func NewConsumer[P any](cfg config.ClientConfig, topic Topic[P], opts ...ConsumerOpt) (*Consumer[P], error) {
	co := consumerOptions{codec: codec.JSON{}}
	for _, opt := range opts {
		opt(&co)
	}
	kopts, err := cfg.ClientOpts()
	if err != nil {
		return nil, fmt.Errorf("broker: consumer config: %w", err)
	}
	kopts = append(kopts, kgo.ConsumeTopics(topic.TopicName()))
	if co.logger != nil {
		kopts = append(kopts, kgo.WithLogger(co.logger))
	}
	client, err := kgo.NewClient(kopts...)
	if err != nil {
		return nil, fmt.Errorf("broker: create consumer client: %w", err)
	}

	maxPoll := 0 // 0 lets the client return whatever is buffered
	if v, ok := cfg.Get("max.poll.records"); ok {
		// already validated by ClientOpts
		maxPoll, _ = strconv.Atoi(v)
	}

	return &Consumer[P]{
		client:  client,
		topic:   topic,
		codec:   co.codec,
		maxPoll: maxPoll,
	}, nil
}

// Topic returns the topic this consumer is bound to.
func (c *Consumer[P]) Topic() Topic[P] { return c.topic }

// Recv returns the next message, polling the broker when the pending batch
// is exhausted. It blocks until a record arrives or ctx ends; there is no
// per-call timeout, cancellation is the caller abandoning ctx. Fetch errors
// surface on polls that yield no records.
func (c *Consumer[P]) Recv(ctx context.Context) (*Message[P], error) {
	for len(c.pending) == 0 {
		fetches := c.client.PollRecords(ctx, c.maxPoll)
		if fetches.IsClientClosed() {
			return nil, ErrConsumerClosed
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if recs := fetches.Records(); len(recs) > 0 {
			c.pending = recs
			break
		}
		if errs := fetches.Errors(); len(errs) > 0 {
			fe := errs[0]
			return nil, fmt.Errorf("broker: fetch from %q partition %d: %w", fe.Topic, fe.Partition, fe.Err)
		}
	}
	rec := c.pending[0]
	c.pending = c.pending[1:]
	return &Message[P]{record: rec, topic: c.topic, codec: c.codec}, nil
}

// Stream returns a lazy, potentially infinite sequence of receive results
// fed by a background poll loop. Each element is independently fallible: a
// broker error yields a Result carrying Err and the loop continues. The
// channel closes when ctx ends or the consumer is closed; cancelling ctx is
// the only unsubscribe step.
func (c *Consumer[P]) Stream(ctx context.Context) <-chan Result[P] {
	out := make(chan Result[P])
	go func() {
		defer close(out)
		for {
			msg, err := c.Recv(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, ErrConsumerClosed) {
					return
				}
				select {
				case out <- Result[P]{Err: err}:
				case <-ctx.Done():
					return
				}
				continue
			}
			select {
			case out <- Result[P]{Msg: msg}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Close releases the underlying client and its subscription.
func (c *Consumer[P]) Close() { c.client.Close() }
