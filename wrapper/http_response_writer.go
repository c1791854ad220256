package wrapper

import (
	"bytes"
	"net/http"
)

// WrapHTTPResponseWriter wrapper, keep status code and copy of response body up to limit
type WrapHTTPResponseWriter struct {
	statusCode int
	size       int
	limit      int
	body       bytes.Buffer
	rw         http.ResponseWriter
}

// NewWrapHTTPResponseWriter init new wrapper for http response writter
func NewWrapHTTPResponseWriter(httpResponseWriter http.ResponseWriter, limit int) *WrapHTTPResponseWriter {
	// Default the status code to 200
	return &WrapHTTPResponseWriter{statusCode: http.StatusOK, limit: limit, rw: httpResponseWriter}
}

// StatusCode give a way to get the Code
func (w *WrapHTTPResponseWriter) StatusCode() int {
	return w.statusCode
}

// Size total bytes written
func (w *WrapHTTPResponseWriter) Size() int {
	return w.size
}

// Body captured response body, false when body exceed the limit
func (w *WrapHTTPResponseWriter) Body() ([]byte, bool) {
	return w.body.Bytes(), w.size <= w.limit
}

// Header Satisfy the http.ResponseWriter interface
func (w *WrapHTTPResponseWriter) Header() http.Header {
	return w.rw.Header()
}

func (w *WrapHTTPResponseWriter) Write(data []byte) (int, error) {
	n, err := w.rw.Write(data)
	if remain := w.limit - w.body.Len(); remain > 0 {
		if remain > n {
			remain = n
		}
		w.body.Write(data[:remain])
	}
	w.size += n
	return n, err
}

// WriteHeader method
func (w *WrapHTTPResponseWriter) WriteHeader(statusCode int) {
	// Store the status code
	w.statusCode = statusCode

	// Write the status code onward.
	w.rw.WriteHeader(statusCode)
}
