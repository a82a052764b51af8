package config

import (
	"strconv"
	"time"
)

// ConsumerBuilder assembles a consumer configuration. It composes the
// general connectivity, TLS, SASL, and API-timeout option groups, plus the
// consumer-exclusive options for group membership and fetch tuning.
type ConsumerBuilder struct {
	ClientOptions[ConsumerBuilder]
	TLSOptions[ConsumerBuilder]
	SASLOptions[ConsumerBuilder]
	TimeoutOptions[ConsumerBuilder]

	cfg   *ClientConfig
	built bool
}

// NewConsumer returns an empty consumer configuration builder.
func NewConsumer() *ConsumerBuilder {
	b := &ConsumerBuilder{cfg: newClientConfig()}
	b.ClientOptions = ClientOptions[ConsumerBuilder]{set: b.setOption, self: b}
	b.TLSOptions = TLSOptions[ConsumerBuilder]{set: b.setOption, self: b}
	b.SASLOptions = SASLOptions[ConsumerBuilder]{set: b.setOption, self: b}
	b.TimeoutOptions = TimeoutOptions[ConsumerBuilder]{set: b.setOption, self: b}
	return b
}

func (b *ConsumerBuilder) setOption(name, value string) {
	if b.built {
		panic("config: ConsumerBuilder used after Build")
	}
	b.cfg.set(name, value)
}

// GroupID sets the consumer group this consumer belongs to. Required for
// group management and Kafka-based offset management.
//
// Default: unset
func (b *ConsumerBuilder) GroupID(groupID string) *ConsumerBuilder {
	b.setOption("group.id", groupID)
	return b
}

// GroupInstanceID opts into static group membership: only one instance with
// this id may be in the group at a time, and transient restarts no longer
// trigger a rebalance. Must be non-empty.
//
// Default: unset (dynamic membership)
func (b *ConsumerBuilder) GroupInstanceID(id string) *ConsumerBuilder {
	b.setOption("group.instance.id", id)
	return b
}

// AutoOffsetReset controls what happens when no committed offset exists for
// the group, or the committed offset no longer exists on the server.
//
// Default: latest
func (b *ConsumerBuilder) AutoOffsetReset(reset OffsetReset) *ConsumerBuilder {
	b.setOption("auto.offset.reset", reset.String())
	return b
}

// EnableAutoCommit periodically commits the consumer's offsets in the
// background.
//
// Default: true
func (b *ConsumerBuilder) EnableAutoCommit(commit bool) *ConsumerBuilder {
	b.setOption("enable.auto.commit", strconv.FormatBool(commit))
	return b
}

// SessionTimeout bounds how long the group coordinator waits for heartbeats
// before declaring this consumer dead and rebalancing its partitions away.
//
// Default: 45s
func (b *ConsumerBuilder) SessionTimeout(timeout time.Duration) *ConsumerBuilder {
	b.setOption("session.timeout.ms", millis(timeout))
	return b
}

// HeartbeatInterval sets the expected time between heartbeats to the group
// coordinator. Must be materially lower than the session timeout, typically
// no more than a third of it.
//
// Default: 3s
func (b *ConsumerBuilder) HeartbeatInterval(interval time.Duration) *ConsumerBuilder {
	b.setOption("heartbeat.interval.ms", millis(interval))
	return b
}

// MaxPollInterval bounds the delay between successive receive calls. A
// consumer exceeding it is considered failed and the group rebalances,
// unless a static group instance id is set, in which case reassignment
// waits for the session timeout instead.
//
// Default: 5m
func (b *ConsumerBuilder) MaxPollInterval(interval time.Duration) *ConsumerBuilder {
	b.setOption("max.poll.interval.ms", millis(interval))
	return b
}

// MaxPollRecords caps the number of records returned by a single poll.
// Fetching behavior is unaffected; fetched records are handed out
// incrementally.
//
// Default: 500
func (b *ConsumerBuilder) MaxPollRecords(count int) *ConsumerBuilder {
	b.setOption("max.poll.records", strconv.Itoa(count))
	return b
}

// FetchMinBytes sets the minimum data the server should return for a fetch,
// trading latency for throughput when raised.
//
// Default: 1
func (b *ConsumerBuilder) FetchMinBytes(count int) *ConsumerBuilder {
	b.setOption("fetch.min.bytes", strconv.Itoa(count))
	return b
}

// FetchMaxBytes caps the data returned for a single fetch request. Not an
// absolute maximum: the first record batch of the first non-empty partition
// is always returned so the consumer can make progress.
//
// Default: 50MiB
func (b *ConsumerBuilder) FetchMaxBytes(count int) *ConsumerBuilder {
	b.setOption("fetch.max.bytes", strconv.Itoa(count))
	return b
}

// MaxPartitionFetchBytes caps the data returned per partition, with the same
// first-batch progress guarantee as FetchMaxBytes.
//
// Default: 1MiB
func (b *ConsumerBuilder) MaxPartitionFetchBytes(count int) *ConsumerBuilder {
	b.setOption("max.partition.fetch.bytes", strconv.Itoa(count))
	return b
}

// AllowAutoCreateTopics allows broker-side topic auto-creation when
// subscribing, if the broker permits it.
//
// Default: true
func (b *ConsumerBuilder) AllowAutoCreateTopics(allow bool) *ConsumerBuilder {
	b.setOption("allow.auto.create.topics", strconv.FormatBool(allow))
	return b
}

// ExcludeInternalTopics excludes internal topics from pattern subscriptions.
// Explicit subscriptions to internal topics are always possible.
//
// Default: true
func (b *ConsumerBuilder) ExcludeInternalTopics(exclude bool) *ConsumerBuilder {
	b.setOption("exclude.internal.topics", strconv.FormatBool(exclude))
	return b
}

// Build finishes the configuration and spends the builder. Build is
// terminal: using the builder afterwards panics.
func (b *ConsumerBuilder) Build() ClientConfig {
	if b.built {
		panic("config: ConsumerBuilder built twice")
	}
	b.built = true
	return *b.cfg
}
