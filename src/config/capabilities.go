package config

import (
	"strconv"
	"strings"
	"time"
)

// setter is the single write primitive every option group funnels through.
// Each role builder installs its own guarded set method here.
type setter func(name, value string)

func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

// ClientOptions is the general connectivity option group shared by every
// role. It is embedded in a role builder and parameterized by the builder
// type so each setter returns the builder, keeping fluent chains role-typed.
type ClientOptions[B any] struct {
	set  setter
	self *B
}

// BootstrapServers sets the host:port seed list used for the initial
// connection to the cluster. The list only matters for discovery; the client
// uses all brokers it learns about afterwards.
//
// Default: ""
func (c ClientOptions[B]) BootstrapServers(urls ...string) *B {
	c.set("bootstrap.servers", strings.Join(urls, ","))
	return c.self
}

// ClientDNSLookup controls how the client uses DNS lookups when resolving
// bootstrap addresses.
//
// Default: use_all_dns_ips
func (c ClientOptions[B]) ClientDNSLookup(lookup DNSLookup) *B {
	c.set("client.dns.lookup", lookup.String())
	return c.self
}

// ClientID sets the logical name attached to all requests, so server-side
// request logging can identify the application beyond ip/port.
//
// Default: ""
func (c ClientOptions[B]) ClientID(id string) *B {
	c.set("client.id", id)
	return c.self
}

// ConnectionsMaxIdle closes idle connections after the given duration.
//
// Default: 5m
func (c ClientOptions[B]) ConnectionsMaxIdle(idle time.Duration) *B {
	c.set("connections.max.idle.ms", millis(idle))
	return c.self
}

// MetadataMaxAge forces a metadata refresh after the given duration even
// without leadership changes, to proactively discover new brokers and
// partitions.
//
// Default: 5m
func (c ClientOptions[B]) MetadataMaxAge(age time.Duration) *B {
	c.set("metadata.max.age.ms", millis(age))
	return c.self
}

// MetricReporters sets the metrics reporter class list.
//
// Default: ""
func (c ClientOptions[B]) MetricReporters(reporters ...string) *B {
	c.set("metric.reporters", strings.Join(reporters, ","))
	return c.self
}

// MetricsNumSamples sets the number of samples maintained to compute metrics.
//
// Default: 2
func (c ClientOptions[B]) MetricsNumSamples(n int) *B {
	c.set("metrics.num.samples", strconv.Itoa(n))
	return c.self
}

// MetricsRecordingLevel sets the highest recording level for metrics.
//
// Default: INFO
func (c ClientOptions[B]) MetricsRecordingLevel(level RecordingLevel) *B {
	c.set("metrics.recording.level", level.String())
	return c.self
}

// MetricsSampleWindow sets the window of time a metrics sample is computed
// over.
//
// Default: 30s
func (c ClientOptions[B]) MetricsSampleWindow(window time.Duration) *B {
	c.set("metrics.sample.window.ms", millis(window))
	return c.self
}

// ReceiveBufferBytes sets the TCP receive buffer size; -1 uses the OS
// default.
//
// Default: 65536
func (c ClientOptions[B]) ReceiveBufferBytes(n int) *B {
	c.set("receive.buffer.bytes", strconv.Itoa(n))
	return c.self
}

// ReconnectBackoff sets the base wait before reconnecting to a host that has
// failed, applied to all connection attempts by the client.
//
// Default: 50ms
func (c ClientOptions[B]) ReconnectBackoff(backoff time.Duration) *B {
	c.set("reconnect.backoff.ms", millis(backoff))
	return c.self
}

// ReconnectBackoffMax caps the exponential per-host reconnect backoff. A 20%
// random jitter is applied on top to avoid connection storms.
//
// Default: 1s
func (c ClientOptions[B]) ReconnectBackoffMax(max time.Duration) *B {
	c.set("reconnect.backoff.max.ms", millis(max))
	return c.self
}

// RequestTimeout sets the maximum time to wait for the response to a single
// request before the client resends or, with retries exhausted, fails it.
//
// Default: 30s
func (c ClientOptions[B]) RequestTimeout(timeout time.Duration) *B {
	c.set("request.timeout.ms", millis(timeout))
	return c.self
}

// RetryBackoff sets the wait before retrying a failed request.
//
// Default: 100ms
func (c ClientOptions[B]) RetryBackoff(backoff time.Duration) *B {
	c.set("retry.backoff.ms", millis(backoff))
	return c.self
}

// SecurityProtocol sets the protocol used to communicate with brokers.
//
// Default: PLAINTEXT
func (c ClientOptions[B]) SecurityProtocol(protocol SecurityProtocol) *B {
	c.set("security.protocol", protocol.String())
	return c.self
}

// SecurityProviders sets the security provider creator class list.
//
// Default: ""
func (c ClientOptions[B]) SecurityProviders(providers ...string) *B {
	c.set("security.providers", strings.Join(providers, ","))
	return c.self
}

// SendBufferBytes sets the TCP send buffer size; -1 uses the OS default.
//
// Default: 131072
func (c ClientOptions[B]) SendBufferBytes(n int) *B {
	c.set("send.buffer.bytes", strconv.Itoa(n))
	return c.self
}

// SocketConnectionSetupTimeout sets how long the client waits for a socket
// connection to be established before closing the channel.
//
// Default: 10s
func (c ClientOptions[B]) SocketConnectionSetupTimeout(timeout time.Duration) *B {
	c.set("socket.connection.setup.timeout.ms", millis(timeout))
	return c.self
}

// SocketConnectionSetupTimeoutMax caps the exponentially increasing
// connection setup timeout.
//
// Default: 30s
func (c ClientOptions[B]) SocketConnectionSetupTimeoutMax(max time.Duration) *B {
	c.set("socket.connection.setup.timeout.max.ms", millis(max))
	return c.self
}

// TLSOptions configures TLS material. Keys and certificates are PEM strings.
type TLSOptions[B any] struct {
	set  setter
	self *B
}

// KeyPassword sets the password of the private key. Encrypted PEM keys are
// not supported by the TLS translation, so a configuration carrying this
// fails at client construction with an explicit error.
//
// Default: unset
func (t TLSOptions[B]) KeyPassword(password string) *B {
	t.set("ssl.key.password", password)
	return t.self
}

// KeystoreCertificateChain sets the client certificate chain as a list of
// PEM X.509 certificates.
func (t TLSOptions[B]) KeystoreCertificateChain(chain string) *B {
	t.set("ssl.keystore.certificate.chain", chain)
	return t.self
}

// KeystoreKey sets the client private key as a PEM PKCS#8 key.
//
// Default: unset
func (t TLSOptions[B]) KeystoreKey(key string) *B {
	t.set("ssl.keystore.key", key)
	return t.self
}

// TruststoreCertificates sets the trusted CA certificates as PEM. When unset
// the system roots are used.
func (t TLSOptions[B]) TruststoreCertificates(certs string) *B {
	t.set("ssl.truststore.certificates", certs)
	return t.self
}

// SASLOptions configures SASL authentication, used when the security
// protocol is SASL_PLAINTEXT or SASL_SSL.
type SASLOptions[B any] struct {
	set  setter
	self *B
}

// Mechanism selects the SASL mechanism.
//
// Default: unset (required when a SASL security protocol is selected)
func (s SASLOptions[B]) Mechanism(mechanism SASLMechanism) *B {
	s.set("sasl.mechanism", mechanism.String())
	return s.self
}

// Username sets the SASL username.
func (s SASLOptions[B]) Username(username string) *B {
	s.set("sasl.username", username)
	return s.self
}

// Password sets the SASL password.
func (s SASLOptions[B]) Password(password string) *B {
	s.set("sasl.password", password)
	return s.self
}

// RetryOptions configures request retry policy. Attached to the producer and
// admin roles.
type RetryOptions[B any] struct {
	set  setter
	self *B
}

// Retries sets the maximum request retry count.
//
// Default: unset
func (r RetryOptions[B]) Retries(count int) *B {
	r.set("retries", strconv.Itoa(count))
	return r.self
}

// TimeoutOptions configures the default API timeout. Attached to the
// consumer and admin roles.
type TimeoutOptions[B any] struct {
	set  setter
	self *B
}

// DefaultAPITimeout sets the timeout applied to every client operation that
// does not specify one of its own.
//
// Default: 60s
func (t TimeoutOptions[B]) DefaultAPITimeout(timeout time.Duration) *B {
	t.set("default.api.timeout.ms", millis(timeout))
	return t.self
}
