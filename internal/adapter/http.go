package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/qa-console/internal/config"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/metrics"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/utils"
	"github.com/MKhiriev/qa-console/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	notifier notify.Notifier
	metrics  *metrics.ClientMetrics
	uuid     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL is the normalised adapterCfg.HTTPAddress followed by
// adapterCfg.BasePath. Failures of any call are reported to notifier; m may
// be nil.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, notifier notify.Notifier, m *metrics.ClientMetrics, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if notifier == nil {
		notifier = notify.Nop()
	}

	h := &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL+normalizeBasePath(adapterCfg.BasePath), adapterCfg.RequestTimeout),
		notifier: notifier,
		metrics:  m,
		uuid:     utils.NewUUIDGenerator(),
		logger:   logger,
	}

	h.client.
		SetJSONUnmarshaler(unmarshalEnvelope).
		OnBeforeRequest(h.beforeRequest).
		OnAfterResponse(h.afterResponse).
		OnSuccess(h.onSuccess).
		OnError(h.onError)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizeBasePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}
	return "/" + path
}

// Chat implements [ServerAdapter].
func (h *httpServerAdapter) Chat() ChatAPI {
	return &chatAPI{h: h}
}

// Knowledge implements [ServerAdapter].
func (h *httpServerAdapter) Knowledge() KnowledgeAPI {
	return &knowledgeAPI{h: h}
}

// envelope is the resty result of every call. Data is decoded into target
// by the response interceptor once the code is known to be 200.
type envelope struct {
	models.Envelope
	target any
}

type routeCtxKey struct{}

// request starts a call to route, a path template such as "/knowledge/{id}".
// The template is kept in the context for logging and metrics.
func (h *httpServerAdapter) request(ctx context.Context, route string, target any) *resty.Request {
	if ctx != nil {
		ctx = context.WithValue(ctx, routeCtxKey{}, route)
	}

	return h.client.R().
		SetContext(ctx).
		SetResult(&envelope{target: target})
}

func routeFromContext(ctx context.Context) (string, bool) {
	route, ok := ctx.Value(routeCtxKey{}).(string)
	return route, ok
}

// do executes req and returns the error seen by the interceptors.
func (h *httpServerAdapter) do(req *resty.Request, method, route string) error {
	if _, err := req.Execute(method, route); err != nil {
		return fmt.Errorf("%s %s: %w", method, route, err)
	}
	return nil
}

func (h *httpServerAdapter) beforeRequest(_ *resty.Client, r *resty.Request) error {
	ctx := r.Context()

	var err error
	if _, ok := routeFromContext(ctx); !ok {
		err = errors.New("request has no context")
	} else if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}
	if err != nil {
		h.logger.Err(err).
			Str("method", r.Method).
			Str("url", r.URL).
			Msg("request error")
		return fmt.Errorf("%w: %w", ErrRequestRejected, err)
	}

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.uuid.Generate()
		r.SetContext(utils.WithTraceID(ctx, traceID))
	}
	r.SetHeader(utils.TraceIDHeader, traceID)

	h.logger.Debug().
		Str("method", r.Method).
		Str("url", r.URL).
		Str("trace_id", traceID).
		Msg("sending request")

	return nil
}

func (h *httpServerAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	env, ok := resp.Result().(*envelope)
	if !ok {
		return nil
	}

	if !strings.Contains(strings.ToLower(resp.Header().Get("Content-Type")), "json") {
		return fmt.Errorf("%w: content type %q", ErrMalformedEnvelope, resp.Header().Get("Content-Type"))
	}

	if !env.OK() {
		return &APIError{Code: env.Code, Message: env.Message}
	}

	if env.target != nil && env.HasData() {
		if err := json.Unmarshal(env.Data, env.target); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
		}
	}

	h.logger.Debug().
		Str("method", resp.Request.Method).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("response received")

	return nil
}

func (h *httpServerAdapter) onSuccess(_ *resty.Client, resp *resty.Response) {
	route, _ := routeFromContext(resp.Request.Context())
	h.metrics.Observe(resp.Request.Method, route, metrics.OutcomeSuccess, resp.Time())
}

// onError receives every failed call: transport errors, interceptor errors
// and non-200 envelopes.
func (h *httpServerAdapter) onError(r *resty.Request, err error) {
	if errors.Is(err, ErrRequestRejected) {
		return
	}

	route, _ := routeFromContext(r.Context())
	var elapsed time.Duration
	if !r.Time.IsZero() {
		elapsed = time.Since(r.Time)
	}

	var apiErr *APIError
	isAPIError := errors.As(err, &apiErr)

	outcome := metrics.OutcomeFailure
	if isAPIError {
		outcome = metrics.OutcomeAPIError
	}
	h.metrics.Observe(r.Method, route, outcome, elapsed)

	h.logger.Err(err).
		Str("method", r.Method).
		Str("route", route).
		Msg("response error")

	if errors.Is(err, context.Canceled) {
		return
	}

	notify.Error(h.notifier, userMessage(err))
}

// userMessage is the notification text for err.
func userMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}

	var respErr *resty.ResponseError
	if errors.As(err, &respErr) {
		err = respErr.Err
	}
	if err == nil || err.Error() == "" {
		return MessageNetworkError
	}
	return err.Error()
}

func unmarshalEnvelope(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	return nil
}
