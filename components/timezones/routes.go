package timezones

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Routes lists the patterns registered by RegisterRoutes.
type Routes struct {
	Options string
	Resolve string
	OpenAPI string
}

// MountPath returns the full mount path for the options route under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath)
}

// ResolveMountPath returns the full mount path for the resolve route.
func ResolveMountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.ResolvePath)
}

// RegisterRoutes registers the component handlers under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Routes, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, basePath, opts)
}

// RegisterRoutesWithOptions registers the handlers under basePath using a
// pre-built Options value. Callers are expected to pass an Options value
// produced by NewOptions (or equivalent) so defaults apply.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (Routes, error) {
	if mux == nil {
		return Routes{}, fmt.Errorf("timezones: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	routes := Routes{
		Options: mountPath(basePath, opts.RoutePath),
		Resolve: mountPath(basePath, opts.ResolvePath),
		OpenAPI: mountPath(basePath, opts.OpenAPIPath),
	}
	if routes.Options == routes.Resolve || routes.Options == routes.OpenAPI || routes.Resolve == routes.OpenAPI {
		return Routes{}, fmt.Errorf("timezones: routes must be distinct: %+v", routes)
	}

	mux.Handle(routes.Options, HandlerWithOptions(opts))
	mux.Handle(routes.Resolve, ResolveHandlerWithOptions(opts))
	mux.Handle(routes.OpenAPI, OpenAPIHandlerWithOptions(basePath, opts))
	return routes, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
