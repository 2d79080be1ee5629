package solver

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/stepview/pkg/buildinfo"
	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/observability"
)

const (
	// DefaultURL is where a locally started solver listens.
	DefaultURL = "http://localhost:8080"
	// DefaultTimeout bounds a whole solve request.
	DefaultTimeout = 30 * time.Second

	runPath      = "/run"
	maxBodyBytes = 32 << 20
)

// Client submits problems to a solver over HTTP.
type Client struct {
	base *url.URL
	http *http.Client
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient returns a client for the solver at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid solver URL %q", baseURL)
	}
	c := &Client{base: u, http: &http.Client{Timeout: DefaultTimeout}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the endpoint requests are posted to.
func (c *Client) URL() string { return c.base.JoinPath(runPath).String() }

// Run submits input under filename for algo and decodes the response.
func (c *Client) Run(ctx context.Context, algo Algorithm, filename string, input []byte) (*Result, error) {
	body, contentType, err := encodeForm(algo, filename, input)
	if err != nil {
		return nil, err
	}

	endpoint := c.base.JoinPath(runPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, endpoint.Host, endpoint.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, endpoint.Host, endpoint.Path, err)
		return nil, transportError(err, endpoint.String())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		hooks.OnError(ctx, req.Method, endpoint.Host, endpoint.Path, err)
		return nil, transportError(err, endpoint.String())
	}
	hooks.OnResponse(ctx, req.Method, endpoint.Host, endpoint.Path, resp.StatusCode, time.Since(start))

	return DecodeResponse(algo, resp.StatusCode, data)
}

func encodeForm(algo Algorithm, filename string, input []byte) (*bytes.Buffer, string, error) {
	if filename == "" {
		filename = "input.txt"
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("algorithm", string(algo)); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "encode form")
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "encode form")
	}
	if _, err := fw.Write(input); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "encode form")
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "encode form")
	}
	return &buf, w.FormDataContentType(), nil
}

func transportError(err error, endpoint string) error {
	if stderrors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return errors.Wrap(errors.ErrCodeTimeout, err, "solver at %s did not answer in time", endpoint)
	}
	return errors.Wrap(errors.ErrCodeNetwork, err, "cannot reach solver at %s", endpoint)
}
