// Package providers holds the responder implementations and the failure
// modes they share.
package providers

import "errors"

// ErrMissingCredential is returned when a provider is constructed without
// an API key. It fires before any network call.
var ErrMissingCredential = errors.New("missing API credential")

// ErrModelUnavailable wraps transport or auth failures talking to the
// hosted model. Callers get it as-is; nothing retries automatically.
var ErrModelUnavailable = errors.New("model unavailable")
