package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/loke-dev/mdx-blog/pkg/renderer/html"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// HandlerFunc is the signature for page handlers
type HandlerFunc func(ctx Ctx) (*vdom.VNode, error)

// ErrorPageFunc renders the page shown when a handler fails
type ErrorPageFunc func(ctx Ctx, err error) *vdom.VNode

// PageCache stores rendered documents keyed by request path
type PageCache interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte)
}

// RouteOption configures a route at registration
type RouteOption func(*RouteNode)

// WithMeta attaches head metadata to a route
func WithMeta(fn MetaFunc) RouteOption {
	return func(n *RouteNode) {
		n.meta = fn
	}
}

// WithoutLayout renders the page without the registered layouts
func WithoutLayout() RouteOption {
	return func(n *RouteNode) {
		n.bare = true
	}
}

// RouteNode represents a node in the radix tree
type RouteNode struct {
	segment   string
	param     bool
	paramName string
	paramType string // "string", "int", "slug"
	handler   HandlerFunc
	meta      MetaFunc
	bare      bool
	children  []*RouteNode
}

// Router manages page routes and renders them into documents
type Router struct {
	root      *RouteNode
	notFound  *RouteNode
	errorPage ErrorPageFunc
	layouts   *LayoutRegistry
	shell     *Shell
	cache     PageCache
	logger    *slog.Logger
	mu        sync.RWMutex
}

// NewRouter creates a new router instance
func NewRouter() *Router {
	return &Router{
		root:    &RouteNode{},
		layouts: NewLayoutRegistry(),
		shell:   DefaultShell(),
		logger:  slog.Default(),
	}
}

// AddRoute registers a page handler for a path.
// Segments written as [name] or [name:type] capture parameters.
func (r *Router) AddRoute(path string, handler HandlerFunc, opts ...RouteOption) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node := r.root
	for _, segment := range splitPath(path) {
		node = findOrCreateChild(node, segment)
	}

	node.handler = handler
	for _, opt := range opts {
		opt(node)
	}
}

// SetNotFound sets the 404 handler
func (r *Router) SetNotFound(handler HandlerFunc, opts ...RouteOption) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node := &RouteNode{handler: handler}
	for _, opt := range opts {
		opt(node)
	}
	r.notFound = node
}

// SetErrorPage sets the 500 page
func (r *Router) SetErrorPage(fn ErrorPageFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorPage = fn
}

// Layouts returns the layout registry used for every page
func (r *Router) Layouts() *LayoutRegistry {
	return r.layouts
}

// SetShell replaces the document shell
func (r *Router) SetShell(shell *Shell) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shell = shell
}

// SetCache enables caching of successful GET renders
func (r *Router) SetCache(cache PageCache) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = cache
}

// SetLogger sets the base logger for request contexts
func (r *Router) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Match finds a handler for the given path. A nil handler means no route matched.
func (r *Router) Match(path string) (HandlerFunc, map[string]string, *RouteNode) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	params := make(map[string]string)
	node, ok := matchNode(r.root, splitPath(path), params)
	if !ok || node.handler == nil {
		return nil, map[string]string{}, nil
	}
	return node.handler, params, node
}

// Render runs the page for ctx and returns the full document.
// The status is recorded on ctx. A nil document with a nil error means the
// handler wrote the response itself.
func (r *Router) Render(ctx Ctx) ([]byte, error) {
	handler, params, node := r.Match(ctx.Path())

	r.mu.RLock()
	notFound, errorPage, shell := r.notFound, r.errorPage, r.shell
	r.mu.RUnlock()

	if handler == nil {
		ctx.Status(http.StatusNotFound)
		node = notFound
		if node == nil {
			node = &RouteNode{handler: defaultNotFound, meta: staticTitle("Not Found")}
		}
		handler = node.handler
	}
	ctx = WithParams(ctx, params)

	content, err := handler(ctx)
	if err != nil {
		ctx.Logger().Error("handler error", "error", err)
		ctx.Status(http.StatusInternalServerError)
		if errorPage == nil {
			errorPage = defaultErrorPage
		}
		content = errorPage(ctx, err)
		node = &RouteNode{meta: staticTitle("Error")}
	}
	if content == nil {
		if ctx.Written() {
			return nil, nil
		}
		return nil, errors.New("handler returned no content")
	}

	if !node.bare {
		content = r.layouts.ApplyLayout(ctx.Path(), content)
	}

	var meta []MetaDescriptor
	if node.meta != nil {
		meta = node.meta(ctx)
	}

	doc, err := html.RenderDocumentBytes(shell.Document(meta, content))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", ctx.Path(), err)
	}
	return doc, nil
}

// ServeHTTP implements http.Handler
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.RLock()
	cache, logger := r.cache, r.logger
	r.mu.RUnlock()

	cacheable := cache != nil && (req.Method == http.MethodGet || req.Method == http.MethodHead)
	if cacheable {
		if doc, ok := cache.Get(req.URL.Path); ok {
			writeDocument(w, req, http.StatusOK, doc)
			return
		}
	}

	ctx := newCtx(w, req, logger)
	doc, err := r.Render(ctx)
	if err != nil {
		ctx.Logger().Error("render failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if doc == nil {
		return
	}

	status := ctx.StatusCode()
	if cacheable && status == http.StatusOK {
		cache.Put(req.URL.Path, doc)
	}
	writeDocument(w, req, status, doc)
}

func writeDocument(w http.ResponseWriter, req *http.Request, status int, doc []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if req.Method != http.MethodHead {
		w.Write(doc)
	}
}

func defaultNotFound(ctx Ctx) (*vdom.VNode, error) {
	return builder.H1().Text("Not Found").Build(), nil
}

func defaultErrorPage(ctx Ctx, err error) *vdom.VNode {
	return builder.H1().Text("Internal Server Error").Build()
}

func staticTitle(title string) MetaFunc {
	return func(Ctx) []MetaDescriptor {
		return []MetaDescriptor{{Title: title}}
	}
}

// findOrCreateChild finds or creates a child node
func findOrCreateChild(parent *RouteNode, segment string) *RouteNode {
	if strings.HasPrefix(segment, "[") && strings.HasSuffix(segment, "]") {
		paramName, paramType := parseParamDef(segment[1 : len(segment)-1])

		for _, child := range parent.children {
			if child.param && child.paramName == paramName && child.paramType == paramType {
				return child
			}
		}
		node := &RouteNode{
			segment:   segment,
			param:     true,
			paramName: paramName,
			paramType: paramType,
		}
		parent.children = append(parent.children, node)
		return node
	}

	for _, child := range parent.children {
		if !child.param && child.segment == segment {
			return child
		}
	}
	node := &RouteNode{segment: segment}
	parent.children = append(parent.children, node)
	return node
}

// matchNode attempts to match a path against the tree.
// Static segments win over parameters.
func matchNode(node *RouteNode, segments []string, params map[string]string) (*RouteNode, bool) {
	if len(segments) == 0 {
		return node, true
	}

	segment := segments[0]
	remaining := segments[1:]

	for _, child := range node.children {
		if !child.param && child.segment == segment {
			if result, ok := matchNode(child, remaining, params); ok && result.handler != nil {
				return result, true
			}
		}
	}

	for _, child := range node.children {
		if child.param && validateParam(segment, child.paramType) {
			params[child.paramName] = segment
			if result, ok := matchNode(child, remaining, params); ok && result.handler != nil {
				return result, true
			}
			delete(params, child.paramName)
		}
	}

	return nil, false
}

// RouteEntry represents a single route in the table
type RouteEntry struct {
	Path   string     `json:"path" yaml:"path"`
	Params []ParamDef `json:"params,omitempty" yaml:"params,omitempty"`
}

// ParamDef represents a route parameter definition
type ParamDef struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Static reports whether the route has no parameters
func (e RouteEntry) Static() bool {
	return len(e.Params) == 0
}

// ExportTable lists every registered route sorted by path
func (r *Router) ExportTable() []RouteEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var table []RouteEntry
	collectRoutes(r.root, nil, nil, &table)
	sort.Slice(table, func(i, j int) bool {
		return table[i].Path < table[j].Path
	})
	return table
}

func collectRoutes(node *RouteNode, segments []string, params []ParamDef, table *[]RouteEntry) {
	if node.segment != "" {
		segments = append(segments[:len(segments):len(segments)], node.segment)
		if node.param {
			params = append(params[:len(params):len(params)], ParamDef{Name: node.paramName, Type: node.paramType})
		}
	}

	if node.handler != nil {
		*table = append(*table, RouteEntry{
			Path:   "/" + strings.Join(segments, "/"),
			Params: params,
		})
	}

	for _, child := range node.children {
		collectRoutes(child, segments, params, table)
	}
}

// Helper functions

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func parseParamDef(def string) (name, paramType string) {
	name, paramType, found := strings.Cut(def, ":")
	if !found || paramType == "" {
		paramType = "string"
	}
	return name, paramType
}

func validateParam(value, paramType string) bool {
	if value == "" {
		return false
	}
	switch paramType {
	case "int":
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	case "slug":
		for _, r := range value {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
				return false
			}
		}
		return true
	default:
		return true
	}
}
