// Package upstream выполняет единственный GET-запрос к провайдеру данных и
// классифицирует любой сбой в одну из категорий apperr.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ridwaanhall/SpaceX/internal/apperr"
	"github.com/ridwaanhall/SpaceX/internal/endpoint"
	"go.uber.org/zap"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 10 << 20
	DefaultUserAgent    = "spacex-proxy/1.0"
)

// Shape - ожидаемый тип верхнего уровня JSON-документа
type Shape int

const (
	ShapeObject Shape = iota
	ShapeArray
)

func (s Shape) String() string {
	if s == ShapeArray {
		return "array"
	}
	return "object"
}

var (
	ErrBodyTooLarge  = errors.New("response body exceeds limit")
	ErrNotJSON       = errors.New("response body is not valid JSON")
	ErrShapeMismatch = errors.New("unexpected top-level JSON shape")
)

// Options настраивает Client
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	Transport    http.RoundTripper
}

// Client получает сырые JSON-документы у провайдера
type Client struct {
	http      *http.Client
	timeout   time.Duration
	userAgent string
	maxBody   int64
	logger    *zap.Logger
}

// New создаёт Client, подставляя значения по умолчанию для пустых опций
func New(opts Options, logger *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		// Тело распаковывается вручную, см. decodeBody
		t.DisableCompression = true
		opts.Transport = t
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:      &http.Client{Transport: opts.Transport},
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
		maxBody:   opts.MaxBodyBytes,
		logger:    logger,
	}
}

// Fetch выполняет один GET без повторов и возвращает тело ответа,
// проверенное на соответствие ожидаемой форме
func (c *Client) Fetch(ctx context.Context, kind endpoint.Kind, rawURL string, shape Shape) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, c.fail(kind, apperr.KindInternal, errors.New("build request"))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(kind, classifyTransport(ctx, err), stripURL(err))
	}
	defer resp.Body.Close()

	c.logger.Debug("Upstream responded",
		zap.String("resource", kind.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if k, ok := classifyStatus(resp.StatusCode); !ok {
		return nil, c.fail(kind, k, fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	body, err := decodeBody(resp, c.maxBody)
	if err != nil {
		if ctx.Err() != nil {
			return nil, c.fail(kind, apperr.KindTimeout, ctx.Err())
		}
		return nil, c.fail(kind, apperr.KindInvalidPayload, err)
	}

	if err := checkShape(body, shape); err != nil {
		c.logger.Warn("Upstream payload rejected",
			zap.String("resource", kind.String()),
			zap.String("mime", mimetype.Detect(body).String()),
			zap.Int("size", len(body)),
		)
		return nil, c.fail(kind, apperr.KindInvalidPayload, err)
	}
	return json.RawMessage(body), nil
}

func (c *Client) fail(kind endpoint.Kind, k apperr.Kind, cause error) error {
	c.logger.Error("Upstream fetch failed",
		zap.String("resource", kind.String()),
		zap.String("category", k.String()),
		zap.Error(cause),
	)
	return apperr.New(k, kind.String(), cause)
}

// classifyStatus возвращает категорию ошибки для не-2xx статуса
func classifyStatus(code int) (apperr.Kind, bool) {
	switch {
	case code >= 200 && code < 300:
		return 0, true
	case code == http.StatusNotFound:
		return apperr.KindNotFound, false
	case code >= 500:
		return apperr.KindUnavailable, false
	default:
		return apperr.KindUpstream, false
	}
}

func classifyTransport(ctx context.Context, err error) apperr.Kind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperr.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperr.KindTimeout
	}
	return apperr.KindConnection
}

// stripURL убирает из ошибки net/http адрес запроса, хост и порт
func stripURL(err error) error {
	op := "request"
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		op = urlErr.Op
		err = urlErr.Err
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%s: lookup failed: %s", op, dnsErr.Err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%s: %s: %w", op, opErr.Op, opErr.Err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func checkShape(body []byte, shape Shape) error {
	if !json.Valid(body) {
		return ErrNotJSON
	}
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	var want byte = '{'
	if shape == ShapeArray {
		want = '['
	}
	if len(trimmed) == 0 || trimmed[0] != want {
		return fmt.Errorf("%w: expected %s", ErrShapeMismatch, shape)
	}
	return nil
}

// readLimited читает не более limit байт, иначе возвращает ErrBodyTooLarge
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}
