package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/logging"
	"golang.org/x/time/rate"
)

// maxErrorBody bounds how much of a failed response is read for diagnostics.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithTimeout bounds every single request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithRateLimit caps outbound requests per second. A non-positive limit
// disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *HTTPClient) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithTransport replaces the underlying round tripper; the bearer decoration
// is still applied on top of it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		if bt, ok := c.http.Transport.(*bearerTransport); ok {
			bt.base = rt
		}
	}
}

func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: want http(s)://host[/path]", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{Transport: &bearerTransport{tokens: tokens}},
		log:     logging.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do performs one JSON round trip. in is encoded as the request body when not
// nil; out receives the decoded response body when not nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return c.mapTransportError(err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done", "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return mapError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s %s: %w: empty body", method, path, ErrUnexpectedStatus)
		}
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// mapError turns a failed response into an *APIError. The backend answers
// either {"error": "..."} or a field -> message map for validation failures.
func mapError(status int, raw []byte) error {
	e := &APIError{StatusCode: status, Err: sentinelFor(status)}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		e.Message = strings.TrimSpace(string(raw))
		return e
	}

	if msg, ok := body["error"].(string); ok {
		e.Message = msg
		if m, ok := body["message"].(string); ok && m != "" {
			e.Message = m
		}
		return e
	}

	for k, v := range body {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if e.Fields == nil {
			e.Fields = map[string]string{}
		}
		e.Fields[k] = s
	}
	return e
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/universities", nil, nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && !errors.Is(err, ErrUnavailable) {
		// the server answered, so it is reachable
		return nil
	}
	return err
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &u); err != nil {
		return models.User{}, err
	}
	if u.ID == 0 {
		return models.User{}, fmt.Errorf("me: %w: no user id", ErrUnexpectedStatus)
	}
	return u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	return c.do(ctx, http.MethodPatch, "/users/profile", nil, patch, nil)
}

func (c *HTTPClient) Authenticate(ctx context.Context, req models.AuthenticationRequest) (string, error) {
	var resp models.AuthenticationResponse
	if err := c.do(ctx, http.MethodPost, "/auth/authenticate", nil, req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("authenticate: %w: empty token", ErrUnexpectedStatus)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, req, nil)
}

func (c *HTTPClient) ResendVerification(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/resend-verification", url.Values{"email": {email}}, nil, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, req, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", nil, req, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/users", id), nil, nil, nil)
}

func (c *HTTPClient) ListUniversities(ctx context.Context) ([]models.University, error) {
	list := []models.University{}
	if err := c.do(ctx, http.MethodGet, "/universities", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetUniversity(ctx context.Context, id int64) (models.University, error) {
	var u models.University
	if err := c.do(ctx, http.MethodGet, idPath("/universities", id), nil, nil, &u); err != nil {
		return models.University{}, err
	}
	return u, nil
}

func (c *HTTPClient) CreateUniversity(ctx context.Context, req models.CreateUniversityRequest) (models.University, error) {
	var u models.University
	if err := c.do(ctx, http.MethodPost, "/universities", nil, req, &u); err != nil {
		return models.University{}, err
	}
	return u, nil
}

func (c *HTTPClient) UpdateUniversity(ctx context.Context, id int64, req models.UpdateUniversityRequest) (models.University, error) {
	var u models.University
	if err := c.do(ctx, http.MethodPut, idPath("/universities", id), nil, req, &u); err != nil {
		return models.University{}, err
	}
	return u, nil
}

func (c *HTTPClient) DeleteUniversity(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/universities", id), nil, nil, nil)
}

func (c *HTTPClient) ListReviews(ctx context.Context) ([]models.Review, error) {
	list := []models.Review{}
	if err := c.do(ctx, http.MethodGet, "/reviews", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) ListUniversityReviews(ctx context.Context, universityID int64) ([]models.Review, error) {
	list := []models.Review{}
	if err := c.do(ctx, http.MethodGet, idPath("/reviews/university", universityID), nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) AddReview(ctx context.Context, req models.CreateReviewRequest) (models.Review, error) {
	var r models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, req, &r); err != nil {
		return models.Review{}, err
	}
	return r, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/reviews", id), nil, nil, nil)
}

var _ Client = (*HTTPClient)(nil)
