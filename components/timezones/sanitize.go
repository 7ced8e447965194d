package timezones

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	echoPolicyOnce sync.Once
	echoPolicy     *bluemonday.Policy
)

// maxEchoLength bounds how much of a rejected expression is echoed back.
const maxEchoLength = 128

// sanitizeEcho strips markup from user input before it is returned in an
// error payload that clients may render verbatim.
func sanitizeEcho(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) > maxEchoLength {
		cut := maxEchoLength
		for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
			cut--
		}
		trimmed = trimmed[:cut]
	}
	return strings.TrimSpace(echoSanitizer().Sanitize(trimmed))
}

func echoSanitizer() *bluemonday.Policy {
	echoPolicyOnce.Do(func() {
		echoPolicy = bluemonday.StrictPolicy()
	})
	return echoPolicy
}
