package render

import (
	"fmt"
	"io"
	"net/http"
)

// Write emits a response description over net/http. It is the only place
// that touches transport primitives; Respond stays free of them.
//
// Streams are fully copied and closed exactly once, regardless of copy
// errors.
func Write(w http.ResponseWriter, resp *Response) error {
	if resp == nil {
		return fmt.Errorf("%w: nil response", ErrInvalidRenderRequest)
	}

	if resp.Location != "" {
		w.Header().Set("Location", resp.Location)
	}

	switch resp.Kind {
	case KindNoContent, KindRedirect:
		w.WriteHeader(resp.Status)
		return nil

	case KindStream:
		setBodyHeaders(w, resp)
		w.WriteHeader(resp.Status)
		defer resp.Stream.Close()
		_, err := io.Copy(w, resp.Stream)
		return err

	default:
		setBodyHeaders(w, resp)
		w.WriteHeader(resp.Status)
		_, err := w.Write(resp.Body)
		return err
	}
}

func setBodyHeaders(w http.ResponseWriter, resp *Response) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	if resp.Filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.Filename))
	}
}
