package candihelper

import (
	"fmt"
	"strings"
	"sync"
)

type (
	multiError struct {
		lock sync.Mutex
		keys []string
		errs map[string]string
	}
)

// NewMultiError constructor
func NewMultiError() MultiError {
	return &multiError{errs: make(map[string]string)}
}

// Append error to multierror, the first message appended for a key wins
func (m *multiError) Append(key string, err error) MultiError {
	m.lock.Lock()
	defer m.lock.Unlock()
	if err == nil {
		return m
	}
	if _, ok := m.errs[key]; !ok {
		m.keys = append(m.keys, key)
		m.errs[key] = err.Error()
	}
	return m
}

// HasError check if err is exist
func (m *multiError) HasError() bool {
	return len(m.errs) != 0
}

// Keys return error keys in insertion order
func (m *multiError) Keys() []string {
	return append([]string(nil), m.keys...)
}

// ToMap return list map of error
func (m *multiError) ToMap() map[string]string {
	return m.errs
}

// Error implement error from multiError
func (m *multiError) Error() string {
	str := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		str = append(str, fmt.Sprintf("%s: %s", k, m.errs[k]))
	}
	return strings.Join(str, "\n")
}
