package config

// AdminBuilder assembles an administrative client configuration. It composes
// every shared option group: general connectivity, TLS, SASL, API timeout,
// and retry policy. Topic-creation parameters (partitions, replication) are
// not configuration; they are passed to the admin operation itself.
type AdminBuilder struct {
	ClientOptions[AdminBuilder]
	TLSOptions[AdminBuilder]
	SASLOptions[AdminBuilder]
	TimeoutOptions[AdminBuilder]
	RetryOptions[AdminBuilder]

	cfg   *ClientConfig
	built bool
}

// NewAdmin returns an empty admin configuration builder.
func NewAdmin() *AdminBuilder {
	b := &AdminBuilder{cfg: newClientConfig()}
	b.ClientOptions = ClientOptions[AdminBuilder]{set: b.setOption, self: b}
	b.TLSOptions = TLSOptions[AdminBuilder]{set: b.setOption, self: b}
	b.SASLOptions = SASLOptions[AdminBuilder]{set: b.setOption, self: b}
	b.TimeoutOptions = TimeoutOptions[AdminBuilder]{set: b.setOption, self: b}
	b.RetryOptions = RetryOptions[AdminBuilder]{set: b.setOption, self: b}
	return b
}

func (b *AdminBuilder) setOption(name, value string) {
	if b.built {
		panic("config: AdminBuilder used after Build")
	}
	b.cfg.set(name, value)
}

// Build finishes the configuration and spends the builder. Build is
// terminal: using the builder afterwards panics.
func (b *AdminBuilder) Build() ClientConfig {
	if b.built {
		panic("config: AdminBuilder built twice")
	}
	b.built = true
	return *b.cfg
}
