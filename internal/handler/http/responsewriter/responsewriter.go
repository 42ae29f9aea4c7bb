// Package responsewriter records the status code and body size written by a
// handler so that logging and metrics middleware can report them.
package responsewriter

import (
	"net/http"
)

// ResponseWriter wraps http.ResponseWriter and remembers what was sent.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
	started bool
}

// Wrap returns w unchanged when it is already a *ResponseWriter, so stacked
// middleware share one recorder.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code only; later calls are dropped
// the same way net/http drops superfluous WriteHeader calls.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.started {
		return
	}
	w.status = code
	w.started = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.started {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// Flush implements http.Flusher when the underlying writer supports it.
func (w *ResponseWriter) Flush() {
	if !w.started {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// StatusCode returns the status sent to the client (200 if none was set).
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten returns the number of body bytes written.
func (w *ResponseWriter) BytesWritten() int { return w.written }

// Started reports whether the header has been sent.
func (w *ResponseWriter) Started() bool { return w.started }

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
