package candihelper

const (
	// Version of this service
	Version = "v1.0.0"

	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"
	// TimeFormatISOMillis layout for stored metadata timestamps, always UTC
	TimeFormatISOMillis = "2006-01-02T15:04:05.000Z"

	// HeaderContentType const
	HeaderContentType = "Content-Type"
	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"
	// HeaderDisableTrace skip tracing for a request when set to true
	HeaderDisableTrace = "X-Disable-Trace"

	// Byte ...
	Byte uint64 = 1

	// WORKDIR const for workdir environment
	WORKDIR = "WORKDIR"
)
