package tracer

type (
	// Option for init tracer option
	Option struct {
		AgentHost      string
		Level          string
		ServiceVersion string
		// ErrorWhitelist errors logged in span without marking the span as failed
		ErrorWhitelist []error
	}

	// OptionFunc func
	OptionFunc func(*Option)
)

// OptionSetAgentHost option func
func OptionSetAgentHost(agent string) OptionFunc {
	return func(o *Option) {
		o.AgentHost = agent
	}
}

// OptionSetLevel option func
func OptionSetLevel(level string) OptionFunc {
	return func(o *Option) {
		o.Level = level
	}
}

// OptionSetServiceVersion option func
func OptionSetServiceVersion(version string) OptionFunc {
	return func(o *Option) {
		o.ServiceVersion = version
	}
}

// OptionAddErrorWhitelist option func
func OptionAddErrorWhitelist(errs ...error) OptionFunc {
	return func(o *Option) {
		o.ErrorWhitelist = append(o.ErrorWhitelist, errs...)
	}
}
