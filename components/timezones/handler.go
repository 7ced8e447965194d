package timezones

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goliatone/go-tzresolve/pkg/timezone"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type optionsResponse struct {
	Data []Option `json:"data"`
}

// Resolution is the payload returned by the resolve handler.
type Resolution struct {
	Input         *string `json:"input"`
	Name          *string `json:"name"`
	Offset        string  `json:"offset"`
	OffsetSeconds int     `json:"offsetSeconds"`
	UTC           bool    `json:"utc"`
	Display       string  `json:"display"`
}

type resolutionResponse struct {
	Data Resolution `json:"data"`
}

// ErrorBody describes a rejected expression.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Input   string `json:"input,omitempty"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

const unrecognizedCode = "unrecognized_time_zone"

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds the options handler from a pre-constructed Options
// value. Callers are expected to pass an Options value produced by NewOptions
// (or equivalent) so defaults/clamps are applied.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !admit(w, r, opts) {
			return
		}

		zones := opts.Zones
		if zones == nil {
			loaded, err := DefaultZones()
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			zones = loaded
		}

		query := r.URL.Query().Get(opts.SearchParam)
		limit := parseInt(r.URL.Query().Get(opts.LimitParam))

		results := SearchOptions(zones, query, limit, opts)
		if results == nil {
			results = []Option{}
		}

		writeJSON(w, r, http.StatusOK, optionsResponse{Data: results})
	})
}

// ResolveHandler builds a handler resolving the expression passed in the
// ExprParam query parameter. A missing parameter resolves to UTC.
func ResolveHandler(fns ...OptionFn) http.Handler {
	return ResolveHandlerWithOptions(NewOptions(fns...))
}

// ResolveHandlerWithOptions is ResolveHandler for a pre-built Options value.
func ResolveHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !admit(w, r, opts) {
			return
		}

		expr := timezone.Absent()
		var input *string
		values := r.URL.Query()
		if values.Has(opts.ExprParam) {
			raw := values.Get(opts.ExprParam)
			input = &raw
			expr = timezone.String(raw)
		}

		tz, err := opts.Resolver.Resolve(expr)
		if err != nil {
			if !errors.Is(err, timezone.ErrUnrecognizedTimeZone) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			body := ErrorBody{Code: unrecognizedCode, Message: "could not recognize time zone"}
			if input != nil {
				body.Input = sanitizeEcho(*input)
			}
			writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: body})
			return
		}

		writeJSON(w, r, http.StatusOK, resolutionResponse{Data: Describe(opts.Resolver, tz, input)})
	})
}

// Describe builds the resolve payload for tz. input is the expression tz was
// resolved from, or nil when none was given.
func Describe(resolver *timezone.Resolver, tz timezone.TimeZone, input *string) Resolution {
	offset := resolver.OffsetNow(tz)
	out := Resolution{
		Input:         input,
		Offset:        timezone.FormatOffset(offset),
		OffsetSeconds: int(offset.Seconds()),
		UTC:           offset == 0,
		Display:       resolver.Format(tz),
	}
	if name, ok := tz.Name(); ok {
		out.Name = &name
	}
	return out
}

// admit applies the method and guard checks shared by every route.
func admit(w http.ResponseWriter, r *http.Request, opts Options) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if opts.Guard != nil {
		if err := opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
