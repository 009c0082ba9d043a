package render

import (
	"errors"
	"io"
)

// Kind discriminates the response shapes a transport layer must know how
// to emit.
type Kind int

const (
	// KindNoContent is a bodyless response.
	KindNoContent Kind = iota
	// KindText is a plain-text body.
	KindText
	// KindJSON is a serialized structured body.
	KindJSON
	// KindRedirect instructs the transport to redirect to Location.
	KindRedirect
	// KindStream streams Body bytes from Stream with a download disposition.
	KindStream
	// KindBinary is an in-memory binary body with a download disposition.
	KindBinary
)

// Response is the wire-level response description produced by Respond.
// It carries no transport behavior itself; Write adapts it to net/http.
//
// A *Response used as a result payload is the explicit "already rendered"
// variant: Respond returns it unchanged without re-classifying.
type Response struct {
	Kind        Kind
	Status      int
	Body        []byte
	ContentType string
	Filename    string
	Location    string
	Stream      io.ReadCloser
}

var (
	// ErrMissingRedirectTarget is returned when a redirect-class status is
	// requested without a target location.
	ErrMissingRedirectTarget = errors.New("render: redirect status without target location")

	// ErrInvalidRenderRequest is returned when the rendering hints are
	// self-contradictory or out of range.
	ErrInvalidRenderRequest = errors.New("render: invalid render request")
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"
)

type hints struct {
	status    int
	hasStatus bool
	location  string
}

// Option supplies a rendering hint to Respond.
type Option func(*hints)

// WithStatus requests an explicit success status code.
func WithStatus(code int) Option {
	return func(h *hints) {
		h.status = code
		h.hasStatus = true
	}
}

// WithLocation supplies the redirect or created-resource location.
func WithLocation(loc string) Option {
	return func(h *hints) {
		h.location = loc
	}
}

func noContent() *Response {
	return &Response{Kind: KindNoContent, Status: 204}
}

func textResponse(status int, body string) *Response {
	return &Response{
		Kind:        KindText,
		Status:      status,
		Body:        []byte(body),
		ContentType: contentTypeText,
	}
}
