package config

// ProducerBuilder assembles a producer configuration. It composes the
// general connectivity, TLS, SASL, and retry option groups; there are no
// producer-exclusive options beyond the shared set.
type ProducerBuilder struct {
	ClientOptions[ProducerBuilder]
	TLSOptions[ProducerBuilder]
	SASLOptions[ProducerBuilder]
	RetryOptions[ProducerBuilder]

	cfg   *ClientConfig
	built bool
}

// NewProducer returns an empty producer configuration builder.
func NewProducer() *ProducerBuilder {
	b := &ProducerBuilder{cfg: newClientConfig()}
	b.ClientOptions = ClientOptions[ProducerBuilder]{set: b.setOption, self: b}
	b.TLSOptions = TLSOptions[ProducerBuilder]{set: b.setOption, self: b}
	b.SASLOptions = SASLOptions[ProducerBuilder]{set: b.setOption, self: b}
	b.RetryOptions = RetryOptions[ProducerBuilder]{set: b.setOption, self: b}
	return b
}

func (b *ProducerBuilder) setOption(name, value string) {
	if b.built {
		panic("config: ProducerBuilder used after Build")
	}
	b.cfg.set(name, value)
}

// Build finishes the configuration and spends the builder. Build is
// terminal: using the builder afterwards panics, since Go cannot enforce the
// ownership transfer statically.
func (b *ProducerBuilder) Build() ClientConfig {
	if b.built {
		panic("config: ProducerBuilder built twice")
	}
	b.built = true
	return *b.cfg
}
