// Package broker is a typed façade over the raw Kafka client: topics carry a
// compile-time payload type, producers serialize transparently, consumers
// decode received records back into the topic's payload type.
package broker

// NamedTopic resolves the externally visible topic name. The name is a
// method rather than a stored field because it may be composed from instance
// state, such as a session or tenant id.
type NamedTopic interface {
	TopicName() string
}

// Topic binds a topic name to its payload type P. Implementations should be
// small value types: producers and consumers copy them freely, and copies
// must be logically identical.
type Topic[P any] interface {
	NamedTopic

	// PayloadType returns the zero value of P and is never called for its
	// result. It pins the payload type to the topic, so a topic declared
	// for one payload type cannot be paired with a send or consumer of
	// another — the mismatch fails to compile instead of at decode time.
	PayloadType() P
}
