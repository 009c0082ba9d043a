// Package render classifies results into wire-level response descriptions.
//
// Respond maps a result.Result plus optional hints (explicit status,
// location) to a Response: successful payloads pick a renderer by requested
// status, failed results dispatch on their fault category (not-found 404,
// unauthorized 401, canceled/timeout 408, forbidden 403, otherwise 400),
// and FileDownload payloads normalize their stream/buffer/URL contents into
// one response shape. A payload that is already a *Response passes through
// untouched.
//
// Write adapts a Response to net/http; nothing else in the package touches
// the transport.
package render
