package types

// Server is the type returned by a classifier server
type Server string

// Service name of a service
type Service string

// Module name of a module inside a service
type Module string

const (
	// REST server
	REST Server = "rest"
)
