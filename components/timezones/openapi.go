package timezones

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPISource []byte

const (
	listOperationID    = "listTimezones"
	resolveOperationID = "resolveTimezone"
)

// OpenAPIDocument loads the embedded route description, rewrites the paths
// and query parameter names to match the mounted configuration, and validates
// the result.
func OpenAPIDocument(ctx context.Context, basePath string, fns ...OptionFn) (*openapi3.T, error) {
	return openAPIDocument(ctx, basePath, NewOptions(fns...))
}

func openAPIDocument(ctx context.Context, basePath string, opts Options) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPISource)
	if err != nil {
		return nil, fmt.Errorf("timezones: load openapi: %w", err)
	}

	paths := openapi3.NewPaths()
	for _, item := range doc.Paths.Map() {
		if item == nil || item.Get == nil {
			continue
		}
		switch item.Get.OperationID {
		case listOperationID:
			renameParams(item.Get, map[string]string{"q": opts.SearchParam, "limit": opts.LimitParam})
			paths.Set(mountPath(basePath, opts.RoutePath), item)
		case resolveOperationID:
			renameParams(item.Get, map[string]string{"tz": opts.ExprParam})
			paths.Set(mountPath(basePath, opts.ResolvePath), item)
		}
	}
	doc.Paths = paths

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("timezones: validate openapi: %w", err)
	}
	return doc, nil
}

func renameParams(op *openapi3.Operation, names map[string]string) {
	for _, ref := range op.Parameters {
		if ref == nil || ref.Value == nil {
			continue
		}
		if name, ok := names[ref.Value.Name]; ok && name != "" {
			ref.Value.Name = name
		}
	}
}

// OpenAPIHandler serves the OpenAPI document for routes mounted at basePath.
func OpenAPIHandler(basePath string, fns ...OptionFn) http.Handler {
	return OpenAPIHandlerWithOptions(basePath, NewOptions(fns...))
}

// OpenAPIHandlerWithOptions is OpenAPIHandler for a pre-built Options value.
// The document is built once; a build failure is reported on every request.
func OpenAPIHandlerWithOptions(basePath string, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })

	var payload []byte
	doc, err := openAPIDocument(context.Background(), basePath, opts)
	if err == nil {
		payload, err = json.Marshal(doc)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !admit(w, r, opts) {
			return
		}
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(payload)
	})
}
