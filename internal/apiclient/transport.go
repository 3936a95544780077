package apiclient

import (
	"bytes"
	"io"
	"net/http"
)

// HandlerTransport routes client requests directly into an http.Handler,
// so the whole API round-trip happens in process. Before is called with each
// request ahead of dispatch; tests use it to observe state mid-flight.
type HandlerTransport struct {
	Handler http.Handler
	Before  func(*http.Request)
}

func NewHandlerTransport(h http.Handler) *HandlerTransport {
	return &HandlerTransport{Handler: h}
}

func (t *HandlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Before != nil {
		t.Before(req)
	}

	rec := &responseRecorder{
		header: make(http.Header),
		status: http.StatusOK,
	}
	t.Handler.ServeHTTP(rec, req)

	return &http.Response{
		StatusCode:    rec.status,
		Status:        http.StatusText(rec.status),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        rec.header,
		Body:          io.NopCloser(bytes.NewReader(rec.body.Bytes())),
		ContentLength: int64(rec.body.Len()),
		Request:       req,
	}, nil
}

type responseRecorder struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func (r *responseRecorder) Header() http.Header {
	return r.header
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	r.wroteHeader = true
	return r.body.Write(p)
}

func (r *responseRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
}
