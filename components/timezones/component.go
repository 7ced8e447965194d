package timezones

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component is a small, extraction-friendly wrapper around the timezone
// handlers, their configuration, and routing helpers.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return NewOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns the options handler.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return HandlerWithOptions(c.opts)
}

// ResolveHandler returns the expression resolution handler.
func (c *Component) ResolveHandler() http.Handler {
	if c == nil {
		return ResolveHandler()
	}
	return ResolveHandlerWithOptions(c.opts)
}

// OpenAPI returns the validated route description for basePath.
func (c *Component) OpenAPI(ctx context.Context, basePath string) (*openapi3.T, error) {
	return openAPIDocument(ctx, basePath, c.Options())
}

// RegisterRoutes registers the component handlers under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (Routes, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
