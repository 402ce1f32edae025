package middleware

import "net/http"

// ResponseRecorder wraps ResponseWriter, records status and size, and runs an optional hook
// once before the first header or body write.
type ResponseRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wrote       bool
	beforeWrite func(http.ResponseWriter)
}

// NewResponseRecorder wraps w.
func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	if rr, ok := w.(*ResponseRecorder); ok {
		return rr
	}
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// SetBeforeWrite registers fn to run just before headers are sent. Multiple hooks run in
// registration order.
func (rw *ResponseRecorder) SetBeforeWrite(fn func(http.ResponseWriter)) {
	prev := rw.beforeWrite
	if prev == nil {
		rw.beforeWrite = fn
		return
	}
	rw.beforeWrite = func(w http.ResponseWriter) {
		prev(w)
		fn(w)
	}
}

func (rw *ResponseRecorder) fire() {
	if rw.wrote {
		return
	}
	rw.wrote = true
	if rw.beforeWrite != nil {
		rw.beforeWrite(rw.ResponseWriter)
	}
}

func (rw *ResponseRecorder) WriteHeader(statusCode int) {
	rw.fire()
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *ResponseRecorder) Write(b []byte) (int, error) {
	rw.fire()
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Flush forwards to the underlying writer when it supports flushing.
func (rw *ResponseRecorder) Flush() {
	rw.fire()
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (rw *ResponseRecorder) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

// Status returns the status code written, 200 when none was.
func (rw *ResponseRecorder) Status() int { return rw.status }

// BytesWritten returns the body size written so far.
func (rw *ResponseRecorder) BytesWritten() int64 { return rw.bytes }

// Wrote reports whether anything was sent.
func (rw *ResponseRecorder) Wrote() bool { return rw.wrote }
