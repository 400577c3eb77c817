package barberapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/pkg/metrics"
)

const maxErrorBodySize = 4 << 10

// Client клиент REST API барбершопов
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	session    SessionTerminator
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента API
func NewClient(
	baseURL string,
	timeout time.Duration,
	tokens TokenProvider,
	session SessionTerminator,
	metrics Metrics,
	log Logger,
) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:  tokens,
		session: session,
		metrics: metrics,
		log:     log,
	}
}

// request описание одного вызова API
type request struct {
	endpoint string // имя для метрик и логов
	method   string
	path     string
	query    url.Values
	body     interface{}
	notFound error // ошибка для 404, nil - считать 404 отказом
}

// do выполняет запрос и декодирует тело успешного ответа в out (если out != nil)
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	started := time.Now()
	outcome := metrics.OutcomeSuccess
	defer func() {
		c.metrics.ObserveUpstream(req.endpoint, outcome, time.Since(started))
	}()

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			outcome = metrics.OutcomeNetworkError
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		outcome = metrics.OutcomeNetworkError
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		outcome = metrics.OutcomeNetworkError
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, req.method, req.path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized:
		outcome = metrics.OutcomeClientError
		c.log.Warn("%s: unauthorized, terminating session", req.endpoint)
		c.session.Terminate(ctx, fmt.Sprintf("%s returned 401", req.endpoint))
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound && req.notFound != nil:
		outcome = metrics.OutcomeClientError
		return req.notFound
	case resp.StatusCode >= 500:
		outcome = metrics.OutcomeServerError
		return fmt.Errorf("%w: status %d: %s", ErrServer, resp.StatusCode, readErrorMessage(resp.Body))
	default:
		outcome = metrics.OutcomeClientError
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = metrics.OutcomeInvalid
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty response body", ErrInvalidResponse)
		}
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage извлекает сообщение об ошибке из тела ответа
func readErrorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBodySize))

	var e errorResponse
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateFormat)
}
