package candihelper

// MultiError abstract interface
type MultiError interface {
	Append(key string, err error) MultiError
	HasError() bool
	Keys() []string
	ToMap() map[string]string
	Error() string
}
