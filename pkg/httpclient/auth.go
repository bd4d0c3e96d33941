package httpclient

import "net/http"

// TokenSource supplies the current bearer token. An empty string means
// no credential is available.
type TokenSource func() string

// BearerAuth returns a middleware that attaches a bearer credential to
// every request. Absence of a token is not an error at this layer: the
// request goes out unauthenticated and the backend enforces authorization.
func BearerAuth(token TokenSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			if tok := token(); tok != "" {
				req = req.Clone(req.Context())
				req.Header.Set("Authorization", "Bearer "+tok)
			}
			return next.RoundTrip(req)
		})
	}
}
