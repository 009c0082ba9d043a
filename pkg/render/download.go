package render

import "io"

// FileDownload is a deferred file payload whose contents are exactly one of
// a byte stream, an in-memory buffer, or a redirect URL. Use the named
// constructors; the zero value renders as "no content".
type FileDownload struct {
	Filename    string
	ContentType string

	stream      io.ReadCloser
	data        []byte
	redirectURL string

	closed bool
}

// StreamDownload wraps a byte stream. Ownership of the stream transfers to
// whichever component renders the response; it is closed exactly once, by
// the transport after the body is written or by Close.
func StreamDownload(filename, contentType string, r io.ReadCloser) *FileDownload {
	return &FileDownload{Filename: filename, ContentType: contentType, stream: r}
}

// BytesDownload wraps an in-memory buffer.
func BytesDownload(filename, contentType string, b []byte) *FileDownload {
	return &FileDownload{Filename: filename, ContentType: contentType, data: b}
}

// RedirectDownload wraps a URL pointing at the real content.
func RedirectDownload(filename, contentType, url string) *FileDownload {
	return &FileDownload{Filename: filename, ContentType: contentType, redirectURL: url}
}

// Close releases the underlying stream, if any. Safe to call more than once;
// only the first call reaches the stream.
func (d *FileDownload) Close() error {
	if d == nil || d.stream == nil || d.closed {
		return nil
	}
	d.closed = true
	return d.stream.Close()
}

// renderDownload normalizes the contents union into a response description.
// The caller has already established that the facade is successful.
func renderDownload(d *FileDownload) (*Response, error) {
	switch {
	case d == nil:
		return noContent(), nil

	case d.stream != nil:
		// Rewind when the stream supports it, so a previously consumed
		// stream is sent from its start.
		if s, ok := d.stream.(io.Seeker); ok {
			if _, err := s.Seek(0, io.SeekStart); err != nil {
				return nil, err
			}
		}
		return &Response{
			Kind:        KindStream,
			Status:      200,
			ContentType: d.ContentType,
			Filename:    d.Filename,
			Stream:      d.stream,
		}, nil

	case d.redirectURL != "":
		// Deliberately the plain-text renderer, not an HTTP redirect:
		// the literal URL is the body.
		return textResponse(200, d.redirectURL), nil

	case d.data != nil:
		return &Response{
			Kind:        KindBinary,
			Status:      200,
			Body:        d.data,
			ContentType: d.ContentType,
			Filename:    d.Filename,
		}, nil

	default:
		return noContent(), nil
	}
}
