package timezone

const (
	localExpr = "local"
	utcExpr   = "UTC"
)

// ParseOffset parses a fixed offset of the form [+-]H[H]:M[M] at the start of
// text. The sign is required and anything after the minutes is ignored, so
// "+05:30:00" reads as +05:30. It returns the offset in seconds east of UTC.
func ParseOffset(text string) (int, bool) {
	if len(text) < 4 {
		return 0, false
	}

	sign := 1
	switch text[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}

	hours, rest := leadingDigits(text[1:])
	if hours < 0 || rest == "" || rest[0] != ':' {
		return 0, false
	}
	minutes, _ := leadingDigits(rest[1:])
	if minutes < 0 {
		return 0, false
	}

	return sign * (hours*3600 + minutes*60), true
}

// leadingDigits reads up to two ASCII digits from the start of text. It
// returns -1 when there is none.
func leadingDigits(text string) (int, string) {
	value, n := 0, 0
	for n < len(text) && n < 2 && text[n] >= '0' && text[n] <= '9' {
		value = value*10 + int(text[n]-'0')
		n++
	}
	if n == 0 {
		return -1, text
	}
	return value, text[n:]
}
