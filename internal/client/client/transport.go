package client

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/mathalama/review-universities/internal/common"
)

// bearerTransport decorates every request with the stored token and a fresh
// request id. The token is read per request so login and logout take effect
// without rebuilding the client.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := ""
	if t.tokens != nil {
		tok, err := t.tokens.Load(req.Context())
		if err != nil {
			if req.Body != nil {
				_ = req.Body.Close()
			}
			return nil, fmt.Errorf("load token: %w", err)
		}
		token = tok
	}

	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	if token != "" {
		r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}
