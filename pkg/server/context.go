package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
)

// Ctx is the canonical interface passed through routing and page handlers
type Ctx interface {
	// === Request ===
	Request() *http.Request   // raw request pointer (read-only)
	Context() context.Context // request context, cancelled when the client goes away
	Path() string             // path without query string
	Method() string           // GET, HEAD, ...
	Query() url.Values        // parsed query params
	Param(key string) string  // route param, "" if missing

	// === Response ===
	Status(code int)               // set HTTP status (default 200)
	StatusCode() int               // current status
	Header() http.Header           // writeable headers
	SetHeader(key, val string)     // convenience
	Redirect(url string, code int) // sets 30x + Location header and marks the response written
	Written() bool                 // true once a handler wrote the response itself

	Logger() *slog.Logger // structured logger
}

// ctxImpl is the internal implementation of Ctx
type ctxImpl struct {
	req        *http.Request
	w          http.ResponseWriter
	params     map[string]string
	statusCode int
	logger     *slog.Logger
	written    bool
	mu         sync.RWMutex
}

// NewContext creates a new context for handling a request
func NewContext(w http.ResponseWriter, r *http.Request) Ctx {
	return newCtx(w, r, slog.Default())
}

func newCtx(w http.ResponseWriter, r *http.Request, logger *slog.Logger) *ctxImpl {
	return &ctxImpl{
		req:        r,
		w:          w,
		params:     make(map[string]string),
		statusCode: http.StatusOK,
		logger: logger.With(
			"path", r.URL.Path,
			"method", r.Method,
		),
	}
}

// WithParams returns ctx with route parameters set
func WithParams(ctx Ctx, params map[string]string) Ctx {
	if impl, ok := ctx.(*ctxImpl); ok {
		impl.mu.Lock()
		impl.params = params
		impl.mu.Unlock()
	}
	return ctx
}

// === Request Methods ===

func (c *ctxImpl) Request() *http.Request {
	return c.req
}

func (c *ctxImpl) Context() context.Context {
	return c.req.Context()
}

func (c *ctxImpl) Path() string {
	return c.req.URL.Path
}

func (c *ctxImpl) Method() string {
	return c.req.Method
}

func (c *ctxImpl) Query() url.Values {
	return c.req.URL.Query()
}

func (c *ctxImpl) Param(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.params[key]
}

// === Response Methods ===

func (c *ctxImpl) Status(code int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.written {
		c.logger.Warn("attempted to set status after response written", "code", code)
		return
	}
	c.statusCode = code
}

func (c *ctxImpl) StatusCode() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statusCode
}

func (c *ctxImpl) Header() http.Header {
	return c.w.Header()
}

func (c *ctxImpl) SetHeader(key, val string) {
	c.w.Header().Set(key, val)
}

func (c *ctxImpl) Redirect(url string, code int) {
	c.mu.Lock()
	c.written = true
	c.statusCode = code
	c.mu.Unlock()

	http.Redirect(c.w, c.req, url, code)
}

func (c *ctxImpl) Written() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.written
}

func (c *ctxImpl) Logger() *slog.Logger {
	return c.logger
}
