package config

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl"
	"github.com/twmb/franz-go/pkg/sasl/plain"
	"github.com/twmb/franz-go/pkg/sasl/scram"
)

// skippedKeys are part of the textual vocabulary but have no franz-go
// counterpart: they configure JVM-client metrics machinery, raw socket
// buffers, or behavior franz-go handles internally. They are accepted so a
// configuration written against the shared vocabulary stays valid, and
// skipped at translation time.
var skippedKeys = map[string]bool{
	"client.dns.lookup":                      true,
	"exclude.internal.topics":                true,
	"metric.reporters":                       true,
	"metrics.num.samples":                    true,
	"metrics.recording.level":                true,
	"metrics.sample.window.ms":               true,
	"receive.buffer.bytes":                   true,
	"reconnect.backoff.max.ms":               true,
	"reconnect.backoff.ms":                   true,
	"security.providers":                     true,
	"send.buffer.bytes":                      true,
	"socket.connection.setup.timeout.max.ms": true,
}

type tlsMaterial struct {
	keyPEM      string
	keyPassword string
	chainPEM    string
	caPEM       string
}

type saslMaterial struct {
	mechanism string
	username  string
	password  string
}

// ClientOpts translates the textual option set into franz-go client options.
// Unknown keys and malformed values are errors, so a typo fails at client
// construction instead of silently changing broker behavior. Two keys are
// not translated but validated and left for the clients themselves:
// max.poll.records (poll batch size) and default.api.timeout.ms (admin
// operation deadline).
func (c ClientConfig) ClientOpts() ([]kgo.Opt, error) {
	var (
		opts     []kgo.Opt
		tlsMat   tlsMaterial
		saslMat  saslMaterial
		protocol = SecurityPlaintext
	)

	for _, o := range c.Entries() {
		if skippedKeys[o.Name] {
			continue
		}
		switch o.Name {
		case "bootstrap.servers":
			opts = append(opts, kgo.SeedBrokers(strings.Split(o.Value, ",")...))
		case "client.id":
			opts = append(opts, kgo.ClientID(o.Value))
		case "connections.max.idle.ms":
			d, err := durationValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.ConnIdleTimeout(d))
		case "metadata.max.age.ms":
			d, err := durationValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.MetadataMaxAge(d))
		case "request.timeout.ms":
			d, err := durationValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.RequestTimeoutOverhead(d))
		case "retry.backoff.ms":
			d, err := durationValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.RetryBackoffFn(func(int) time.Duration { return d }))
		case "retries":
			n, err := intValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.RequestRetries(n))
		case "socket.connection.setup.timeout.ms":
			d, err := durationValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.DialTimeout(d))
		case "group.id":
			opts = append(opts, kgo.ConsumerGroup(o.Value))
		case "group.instance.id":
			opts = append(opts, kgo.InstanceID(o.Value))
		case "auto.offset.reset":
			switch OffsetReset(o.Value) {
			case OffsetResetEarliest:
				opts = append(opts, kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()))
			case OffsetResetLatest:
				opts = append(opts, kgo.ConsumeResetOffset(kgo.NewOffset().AtEnd()))
			case OffsetResetNone:
				opts = append(opts, kgo.ConsumeResetOffset(kgo.NoResetOffset()))
			default:
				return nil, fmt.Errorf("config: invalid auto.offset.reset %q", o.Value)
			}
		case "enable.auto.commit":
			b, err := boolValue(o)
			if err != nil {
				return nil, err
			}
			if !b {
				opts = append(opts, kgo.DisableAutoCommit())
			}
		case "session.timeout.ms":
			d, err := durationValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.SessionTimeout(d))
		case "heartbeat.interval.ms":
			d, err := durationValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.HeartbeatInterval(d))
		case "max.poll.interval.ms":
			// franz-go has no poll-loop liveness check; the rebalance
			// timeout is its bound on how long a member may stall.
			d, err := durationValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.RebalanceTimeout(d))
		case "fetch.min.bytes":
			n, err := intValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.FetchMinBytes(int32(n)))
		case "fetch.max.bytes":
			n, err := intValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.FetchMaxBytes(int32(n)))
		case "max.partition.fetch.bytes":
			n, err := intValue(o)
			if err != nil {
				return nil, err
			}
			opts = append(opts, kgo.FetchMaxPartitionBytes(int32(n)))
		case "allow.auto.create.topics":
			b, err := boolValue(o)
			if err != nil {
				return nil, err
			}
			if b {
				opts = append(opts, kgo.AllowAutoTopicCreation())
			}
		case "max.poll.records":
			if _, err := intValue(o); err != nil {
				return nil, err
			}
		case "default.api.timeout.ms":
			if _, err := durationValue(o); err != nil {
				return nil, err
			}
		case "security.protocol":
			switch SecurityProtocol(o.Value) {
			case SecurityPlaintext, SecurityTLS, SecuritySASLPlaintext, SecuritySASLTLS:
				protocol = SecurityProtocol(o.Value)
			default:
				return nil, fmt.Errorf("config: invalid security.protocol %q", o.Value)
			}
		case "ssl.key.password":
			tlsMat.keyPassword = o.Value
		case "ssl.keystore.key":
			tlsMat.keyPEM = o.Value
		case "ssl.keystore.certificate.chain":
			tlsMat.chainPEM = o.Value
		case "ssl.truststore.certificates":
			tlsMat.caPEM = o.Value
		case "sasl.mechanism":
			saslMat.mechanism = o.Value
		case "sasl.username":
			saslMat.username = o.Value
		case "sasl.password":
			saslMat.password = o.Value
		default:
			return nil, fmt.Errorf("config: unknown option %q", o.Name)
		}
	}

	if protocol == SecurityTLS || protocol == SecuritySASLTLS {
		tc, err := tlsMat.config()
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.DialTLSConfig(tc))
	}
	if protocol == SecuritySASLPlaintext || protocol == SecuritySASLTLS {
		mechanism, err := saslMat.config()
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.SASL(mechanism))
	}

	return opts, nil
}

func durationValue(o Option) (time.Duration, error) {
	ms, err := strconv.ParseInt(o.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: option %s: %q is not a millisecond count", o.Name, o.Value)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func intValue(o Option) (int, error) {
	n, err := strconv.Atoi(o.Value)
	if err != nil {
		return 0, fmt.Errorf("config: option %s: %q is not an integer", o.Name, o.Value)
	}
	return n, nil
}

func boolValue(o Option) (bool, error) {
	b, err := strconv.ParseBool(o.Value)
	if err != nil {
		return false, fmt.Errorf("config: option %s: %q is not a boolean", o.Name, o.Value)
	}
	return b, nil
}

func (t tlsMaterial) config() (*tls.Config, error) {
	if t.keyPassword != "" {
		return nil, errors.New("config: ssl.key.password is set but encrypted PEM keys are not supported; provide an unencrypted ssl.keystore.key")
	}
	tc := &tls.Config{MinVersion: tls.VersionTLS12}
	if t.caPEM != "" {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM([]byte(t.caPEM)) {
			return nil, errors.New("config: ssl.truststore.certificates contains no valid PEM certificates")
		}
		tc.RootCAs = pool
	}
	if t.keyPEM != "" || t.chainPEM != "" {
		cert, err := tls.X509KeyPair([]byte(t.chainPEM), []byte(t.keyPEM))
		if err != nil {
			return nil, fmt.Errorf("config: ssl keystore material: %w", err)
		}
		tc.Certificates = []tls.Certificate{cert}
	}
	return tc, nil
}

func (s saslMaterial) config() (sasl.Mechanism, error) {
	if s.username == "" {
		return nil, errors.New("config: sasl.username is required for SASL security protocols")
	}
	switch SASLMechanism(s.mechanism) {
	case SASLPlain:
		return plain.Auth{User: s.username, Pass: s.password}.AsMechanism(), nil
	case SASLScramSha256:
		return scram.Auth{User: s.username, Pass: s.password}.AsSha256Mechanism(), nil
	case SASLScramSha512:
		return scram.Auth{User: s.username, Pass: s.password}.AsSha512Mechanism(), nil
	case "":
		return nil, errors.New("config: sasl.mechanism is required for SASL security protocols")
	default:
		return nil, fmt.Errorf("config: unsupported sasl.mechanism %q", s.mechanism)
	}
}
