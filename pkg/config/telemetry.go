package config

// TelemetryConfig controls OTLP trace export and span attribute contracts.
type TelemetryConfig struct {
	// Enabled turns trace export on. Setting OTEL_EXPORTER_OTLP_ENDPOINT
	// implies it.
	Enabled bool

	// ServiceName stamped on exported resource attributes.
	ServiceName string

	// Endpoint is the OTLP collector address, e.g. "localhost:4317".
	Endpoint string

	// Insecure disables TLS on the exporter connection.
	Insecure bool

	// SampleRatio is the trace sampling ratio in [0, 1].
	SampleRatio float64

	// ContractLevel controls span attribute contract enforcement:
	// off, warn, or error.
	ContractLevel string
}

// DefaultTelemetryConfig returns the built-in telemetry defaults.
func DefaultTelemetryConfig() *TelemetryConfig {
	return &TelemetryConfig{
		Enabled:       false,
		ServiceName:   "querra",
		Insecure:      true,
		SampleRatio:   1.0,
		ContractLevel: "warn",
	}
}
