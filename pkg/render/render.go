package render

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/outcome-kit/expected/pkg/result"
)

// Respond classifies a result into a wire-level response description.
//
// Order of evaluation: a payload that is already a *Response passes through
// unchanged; a failed result dispatches on its fault category; a FileDownload
// payload takes the download normalization path; everything else renders by
// the requested status. Malformed hints surface as errors, never as a
// silently downgraded response.
func Respond[T any](r result.Result[T], opts ...Option) (*Response, error) {
	var h hints
	for _, opt := range opts {
		opt(&h)
	}

	if !r.IsSuccessful() {
		return classifyFault(r.Fault()), nil
	}

	v, _ := r.Value()

	switch p := any(v).(type) {
	case *Response:
		// Already rendered upstream.
		return p, nil
	case *FileDownload:
		return renderDownload(p)
	case FileDownload:
		return renderDownload(&p)
	}

	if _, ok := any(v).(result.Unit); ok && !h.hasStatus {
		return noContent(), nil
	}

	if !h.hasStatus {
		return renderPayload(v, http.StatusOK)
	}

	if h.status < 100 || h.status > 599 {
		return nil, fmt.Errorf("%w: status %d out of range", ErrInvalidRenderRequest, h.status)
	}

	switch h.status {
	case http.StatusOK:
		return renderPayload(v, http.StatusOK)

	case http.StatusNoContent:
		return noContent(), nil

	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		if h.location == "" {
			return nil, ErrMissingRedirectTarget
		}
		return &Response{Kind: KindRedirect, Status: h.status, Location: h.location}, nil

	case http.StatusCreated, http.StatusAccepted:
		resp, err := renderPayload(v, h.status)
		if err != nil {
			return nil, err
		}
		resp.Location = h.location
		return resp, nil

	default:
		return jsonResponse(v, h.status)
	}
}

// RespondEmpty classifies a payload-free result.
func RespondEmpty(r result.Result[result.Unit], opts ...Option) (*Response, error) {
	return Respond(r, opts...)
}

// renderPayload picks plain text for string payloads and a serialized body
// for everything else.
func renderPayload(v any, status int) (*Response, error) {
	if s, ok := v.(string); ok {
		return textResponse(status, s), nil
	}
	return jsonResponse(v, status)
}

func jsonResponse(v any, status int) (*Response, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRenderRequest, err)
	}
	return &Response{
		Kind:        KindJSON,
		Status:      status,
		Body:        b,
		ContentType: contentTypeJSON,
	}, nil
}

// classifyFault maps a fault category to its response shape. First match
// wins; unmatched categories render as a generic client error carrying the
// fault message.
func classifyFault(f *result.Fault) *Response {
	switch f.Category {
	case result.CategoryNotFound:
		return textResponse(http.StatusNotFound, f.Message)
	case result.CategoryUnauthorized:
		return &Response{Kind: KindNoContent, Status: http.StatusUnauthorized}
	case result.CategoryCanceled, result.CategoryTimeout:
		return &Response{Kind: KindNoContent, Status: http.StatusRequestTimeout}
	case result.CategoryForbidden:
		return &Response{Kind: KindNoContent, Status: http.StatusForbidden}
	default:
		return textResponse(http.StatusBadRequest, f.Message)
	}
}
