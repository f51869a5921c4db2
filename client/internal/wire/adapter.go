// Package wire translates logical API calls into HTTP round trips and
// interprets the responses of the mite API.
package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
	"github.com/mite-eleven/mite-go/client/internal/types"
)

// Header names and defaults used on every request.
const (
	HeaderAPIKey       = "X-MiteApiKey"
	ContentTypeJSON    = "application/json"
	DefaultUserAgent   = "mite-go/1.0"
	defaultContentType = ContentTypeJSON
)

var supportedMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut,
	http.MethodDelete, http.MethodPatch, http.MethodHead,
}

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the read-only settings of an Adapter.
type Config struct {
	BaseURL             string
	APIKey              string
	Username            string
	Password            string
	UserAgent           string
	ExpectedContentType string
}

// Adapter is safe for concurrent use when its Doer is.
type Adapter struct {
	cfg    Config
	http   Doer
	logger zerolog.Logger
}

// New returns an Adapter sending requests through doer.
func New(cfg Config, doer Doer, logger zerolog.Logger) *Adapter {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.ExpectedContentType == "" {
		cfg.ExpectedContentType = defaultContentType
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Adapter{cfg: cfg, http: doer, logger: logger}
}

// CallOption adjusts a single Call.
type CallOption func(*callOptions)

type callOptions struct {
	expected string
	headers  http.Header
}

// WithExpectedContentType overrides the content type a successful response
// must carry.
func WithExpectedContentType(ct string) CallOption {
	return func(o *callOptions) { o.expected = ct }
}

// WithHeader adds a caller header. Repeated names keep every value.
func WithHeader(name, value string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Add(name, value)
	}
}

// BuildRequest creates the request envelope for method and path. Method
// derived headers are set first; caller headers are added on top so a
// repeated name carries both values.
func (a *Adapter) BuildRequest(ctx context.Context, method, path string, headers http.Header) (*http.Request, error) {
	method = strings.ToUpper(method)
	if !slices.Contains(supportedMethods, method) {
		return nil, &mierrors.UnsupportedMethodError{Method: method}
	}

	req, err := http.NewRequestWithContext(ctx, method, a.endpoint(path), nil)
	if err != nil {
		return nil, &mierrors.RuntimeAPIError{Message: err.Error(), Err: err}
	}

	if a.cfg.APIKey != "" {
		req.Header.Set(HeaderAPIKey, a.cfg.APIKey)
	} else if a.cfg.Username != "" && a.cfg.Password != "" {
		req.SetBasicAuth(a.cfg.Username, a.cfg.Password)
	}
	req.Header.Set("User-Agent", a.cfg.UserAgent)
	if method != http.MethodGet && method != http.MethodDelete {
		req.Header.Set("Content-Type", ContentTypeJSON)
	}

	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	return req, nil
}

func (a *Adapter) endpoint(path string) string {
	return strings.TrimRight(a.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Dispatch encodes params into the query string (GET, DELETE, HEAD) or a JSON
// body (every other method) and sends req. Transport failures are returned
// untouched so Interpret can classify them.
func (a *Adapter) Dispatch(req *http.Request, params types.Params) (*http.Response, error) {
	if len(params) > 0 {
		switch req.Method {
		case http.MethodGet, http.MethodDelete, http.MethodHead:
			q := req.URL.Query()
			for k, v := range params {
				for _, s := range queryValues(v) {
					q.Add(k, s)
				}
			}
			req.URL.RawQuery = q.Encode()
		default:
			body, err := json.Marshal(params)
			if err != nil {
				return nil, &mierrors.RuntimeAPIError{Message: err.Error(), Code: mierrors.CodeEncoding, Err: err}
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
			req.GetBody = func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(body)), nil
			}
		}
	}
	return a.http.Do(req)
}

func queryValues(v any) []string {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, queryValue(rv.Index(i).Interface()))
		}
		return out
	}
	return []string{queryValue(v)}
}

func queryValue(v any) string {
	if b, ok := v.(bool); ok {
		return types.BoolString(b)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// Interpret turns the result of Dispatch into an Outcome or one of the
// typed errors. expected defaults to the adapter's configured content type.
func (a *Adapter) Interpret(resp *http.Response, err error, expected string) (*Outcome, error) {
	if err != nil {
		var rt *mierrors.RuntimeAPIError
		if errors.As(err, &rt) {
			return nil, err
		}
		return nil, mierrors.FromTransport(err)
	}
	if expected == "" {
		expected = a.cfg.ExpectedContentType
	}

	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mierrors.FromTransport(err)
	}
	// Keep the body readable for callers inspecting the attached response.
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	contentType := resp.Header.Get("Content-Type")
	isJSON := strings.HasPrefix(contentType, ContentTypeJSON)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if !strings.HasPrefix(contentType, expected) {
			return nil, &mierrors.RuntimeAPIError{
				Message:  fmt.Sprintf("Wrong type of response, expected: %s got: %s", expected, contentType),
				Code:     mierrors.CodeEncoding,
				Response: resp,
			}
		}
		if !isJSON {
			return &Outcome{Kind: KindText, Text: string(raw), Raw: raw, StatusCode: resp.StatusCode}, nil
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			return &Outcome{Kind: KindAck, StatusCode: resp.StatusCode}, nil
		}
		data, ok := decodeStructured(raw)
		if !ok {
			return nil, &mierrors.RuntimeAPIError{
				Message:  "Cannot decode data",
				Code:     mierrors.CodeEncoding,
				Response: resp,
			}
		}
		return &Outcome{Kind: KindData, Data: data, Raw: raw, StatusCode: resp.StatusCode}, nil
	}

	if resp.StatusCode == http.StatusForbidden {
		return nil, &mierrors.RuntimeAPIError{
			Message:  string(raw),
			Code:     mierrors.CodeAuthentication,
			Response: resp,
		}
	}

	if isJSON {
		var data any
		_ = json.Unmarshal(raw, &data)
		return nil, &mierrors.RuntimeAPIError{
			Message:  mierrors.DefaultErrorMessage,
			Code:     resp.StatusCode,
			Data:     data,
			Response: resp,
		}
	}

	return nil, &mierrors.RuntimeAPIError{
		Message:  string(raw),
		Code:     resp.StatusCode,
		Response: resp,
	}
}

// decodeStructured accepts JSON objects and arrays only.
func decodeStructured(raw []byte) (any, bool) {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false
	}
	switch data.(type) {
	case map[string]any, []any:
		return data, true
	}
	return nil, false
}

// Call performs one logical API operation: build, dispatch, interpret.
func (a *Adapter) Call(ctx context.Context, method, path string, params types.Params, opts ...CallOption) (*Outcome, error) {
	if strings.TrimSpace(path) == "" {
		return nil, mierrors.NewInvalidArgument("No Url provided")
	}
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	req, err := a.BuildRequest(ctx, method, path, o.headers)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := a.Dispatch(req, params)
	if err != nil {
		a.logger.Error().Err(err).Str("method", req.Method).Str("path", path).Msg("mite request failed")
	}
	out, err := a.Interpret(resp, err, o.expected)

	ev := a.logger.Debug().Str("method", req.Method).Str("path", path).Dur("elapsed", time.Since(start))
	if resp != nil {
		ev = ev.Int("status", resp.StatusCode)
	}
	ev.Msg("mite call")
	return out, err
}
