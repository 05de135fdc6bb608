package util

func IsNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsSpace covers the single-byte separators; the parser falls back to unicode.IsSpace
// for multi-byte runes.
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func IsSign(b byte) bool {
	return b == '+' || b == '-'
}
