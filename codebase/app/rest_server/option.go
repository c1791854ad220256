package restserver

import (
	"strings"

	"github.com/golangid/wedding-invitation/config/env"
	"github.com/golangid/wedding-invitation/wrapper"
)

type (
	option struct {
		httpPort            uint16
		rootPath            string
		debugMode           bool
		jaegerMaxPacketSize int
		bodyLimit           string
		storage             string
		healthCheck         wrapper.HealthCheckFunc
		cors                CORSConfig
	}

	// OptionFunc type
	OptionFunc func(*option)
)

// CORSConfig cross origin setting
type CORSConfig struct {
	AllowOrigins, AllowMethods, AllowHeaders []string
	AllowCredential                          bool
}

func getDefaultOption() option {
	return option{
		httpPort:            8000,
		rootPath:            "/api",
		debugMode:           false,
		jaegerMaxPacketSize: env.BaseEnv().JaegerMaxPacketSize,
		bodyLimit:           "1M",
		cors: CORSConfig{
			AllowOrigins:    env.BaseEnv().CORSAllowOrigins,
			AllowMethods:    env.BaseEnv().CORSAllowMethods,
			AllowHeaders:    env.BaseEnv().CORSAllowHeaders,
			AllowCredential: env.BaseEnv().CORSAllowCredential,
		},
	}
}

// SetHTTPPort option func
func SetHTTPPort(port uint16) OptionFunc {
	return func(o *option) {
		o.httpPort = port
	}
}

// SetRootPath option func
func SetRootPath(rootPath string) OptionFunc {
	return func(o *option) {
		o.rootPath = "/" + strings.Trim(rootPath, "/")
	}
}

// SetDebugMode option func
func SetDebugMode(debugMode bool) OptionFunc {
	return func(o *option) {
		o.debugMode = debugMode
	}
}

// SetJaegerMaxPacketSize option func
func SetJaegerMaxPacketSize(max int) OptionFunc {
	return func(o *option) {
		o.jaegerMaxPacketSize = max
	}
}

// SetBodyLimit option func, size format from echo body limit middleware (e.g. "1M")
func SetBodyLimit(limit string) OptionFunc {
	return func(o *option) {
		o.bodyLimit = limit
	}
}

// SetHealthCheck option func, storage name and dependency checker reported by /health
func SetHealthCheck(storage string, check wrapper.HealthCheckFunc) OptionFunc {
	return func(o *option) {
		o.storage = storage
		o.healthCheck = check
	}
}

// SetCORS option func
func SetCORS(cfg CORSConfig) OptionFunc {
	return func(o *option) {
		o.cors = cfg
	}
}
