package broker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"typedkafka/src/config"
)

// topicCreator matches the kadm.Client surface the admin uses; tests
// substitute fakes.
type topicCreator interface {
	CreateTopic(ctx context.Context, partitions int32, replicationFactor int16, configs map[string]*string, topic string) (kadm.CreateTopicResponse, error)
}

// ReplicationSpec is the replication requested for a new topic: a fixed
// factor, or the broker's default.
type ReplicationSpec struct {
	factor int16
}

// ReplicationFactor requests a fixed replication factor.
func ReplicationFactor(n int16) ReplicationSpec { return ReplicationSpec{factor: n} }

// BrokerDefaultReplication leaves the replication factor to the broker.
func BrokerDefaultReplication() ReplicationSpec { return ReplicationSpec{factor: -1} }

// Admin performs administrative operations against the cluster.
type Admin struct {
	admin   topicCreator
	client  *kgo.Client
	timeout time.Duration
}

// AdminOpt adjusts admin construction.
type AdminOpt func(*adminOptions)

type adminOptions struct {
	logger kgo.Logger
}

// WithAdminLogger routes the raw client's internal logging.
func WithAdminLogger(l kgo.Logger) AdminOpt {
	return func(o *adminOptions) { o.logger = l }
}

// NewAdmin constructs the raw admin client from cfg. The configuration's
// default API timeout (60s when unset) bounds operations whose context
// carries no deadline.
func NewAdmin(cfg config.ClientConfig, opts ...AdminOpt) (*Admin, error) {
	ao := adminOptions{}
	for _, opt := range opts {
		opt(&ao)
	}
	kopts, err := cfg.ClientOpts()
	if err != nil {
		return nil, fmt.Errorf("broker: admin config: %w", err)
	}
	if ao.logger != nil {
		kopts = append(kopts, kgo.WithLogger(ao.logger))
	}
	client, err := kgo.NewClient(kopts...)
	if err != nil {
		return nil, fmt.Errorf("broker: create admin client: %w", err)
	}

	timeout := 60 * time.Second
	if v, ok := cfg.Get("default.api.timeout.ms"); ok {
		// already validated by ClientOpts
		ms, _ := strconv.ParseInt(v, 10, 64)
		timeout = time.Duration(ms) * time.Millisecond
	}

	return &Admin{admin: kadm.NewClient(client), client: client, timeout: timeout}, nil
}

// CreateTopic issues a creation request for topic's resolved name and waits
// for the broker's per-topic response. A failure scoped to the topic —
// already exists, invalid replication factor — comes back as a *AdminError
// the caller can inspect, not a transport error and not a crash.
func (a *Admin) CreateTopic(ctx context.Context, topic NamedTopic, partitions int32, replication ReplicationSpec) error {
	if _, ok := ctx.Deadline(); !ok && a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	name := topic.TopicName()
	resp, err := a.admin.CreateTopic(ctx, partitions, replication.factor, nil, name)
	if resp.Err != nil {
		return &AdminError{Topic: name, Err: resp.Err}
	}
	if err != nil {
		return fmt.Errorf("broker: create topic %q: %w", name, err)
	}
	return nil
}

// Close releases the underlying client.
func (a *Admin) Close() {
	if a.client != nil {
		a.client.Close()
	}
}
