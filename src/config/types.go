package config

// OffsetReset controls consumer behavior when no committed offset exists (or
// the committed offset has been deleted on the server).
type OffsetReset string

const (
	// OffsetResetEarliest resets to the earliest available offset.
	OffsetResetEarliest OffsetReset = "earliest"
	// OffsetResetLatest resets to the latest offset.
	OffsetResetLatest OffsetReset = "latest"
	// OffsetResetNone surfaces an error to the consumer instead of resetting.
	OffsetResetNone OffsetReset = "none"
)

func (r OffsetReset) String() string { return string(r) }

// SecurityProtocol is the protocol used to communicate with brokers.
type SecurityProtocol string

const (
	SecurityPlaintext     SecurityProtocol = "PLAINTEXT"
	SecurityTLS           SecurityProtocol = "SSL"
	SecuritySASLPlaintext SecurityProtocol = "SASL_PLAINTEXT"
	SecuritySASLTLS       SecurityProtocol = "SASL_SSL"
)

func (p SecurityProtocol) String() string { return string(p) }

// SASLMechanism selects the SASL authentication mechanism.
type SASLMechanism string

const (
	SASLPlain       SASLMechanism = "PLAIN"
	SASLScramSha256 SASLMechanism = "SCRAM-SHA-256"
	SASLScramSha512 SASLMechanism = "SCRAM-SHA-512"
)

func (m SASLMechanism) String() string { return string(m) }

// DNSLookup controls how the client resolves bootstrap hostnames.
type DNSLookup string

const (
	DNSLookupUseAllIPs              DNSLookup = "use_all_dns_ips"
	DNSLookupCanonicalBootstrapOnly DNSLookup = "resolve_canonical_bootstrap_servers_only"
)

func (d DNSLookup) String() string { return string(d) }

// RecordingLevel is the highest recording level for client metrics.
type RecordingLevel string

const (
	RecordingTrace RecordingLevel = "TRACE"
	RecordingDebug RecordingLevel = "DEBUG"
	RecordingInfo  RecordingLevel = "INFO"
)

func (l RecordingLevel) String() string { return string(l) }
