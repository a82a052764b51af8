// Package config assembles Kafka client configurations from composable
// option groups. Producer, consumer, and admin roles each get a builder that
// exposes exactly the option groups relevant to that role; every setter
// writes through one shared textual option set using the broker client's
// key vocabulary (librdkafka-compatible names, milliseconds unless noted).
package config

// Option is a single named configuration assignment.
type Option struct {
	Name  string
	Value string
}

// ClientConfig is an ordered accumulation of Options. Setting a name that is
// already present overwrites its value in place (last write wins); the order
// of first assignment is preserved. No range validation happens here — the
// broker client is the authority on legal values.
//
// A ClientConfig returned by a builder's Build is read-only from this
// package's perspective and may be used to construct any number of clients.
type ClientConfig struct {
	names  []string
	values map[string]string
}

func newClientConfig() *ClientConfig {
	return &ClientConfig{values: make(map[string]string)}
}

func (c *ClientConfig) set(name, value string) {
	if _, ok := c.values[name]; !ok {
		c.names = append(c.names, name)
	}
	c.values[name] = value
}

// Get returns the value set for name and whether it was set at all. Options
// that were never set are absent, not defaulted.
func (c ClientConfig) Get(name string) (string, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Len returns the number of distinct option names set.
func (c ClientConfig) Len() int {
	return len(c.names)
}

// Entries returns the options in first-assignment order.
func (c ClientConfig) Entries() []Option {
	out := make([]Option, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, Option{Name: name, Value: c.values[name]})
	}
	return out
}
