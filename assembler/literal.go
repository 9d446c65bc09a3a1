package assembler

import (
	"fmt"
	"strconv"
	"strings"
)

// parseNumber parses one numeric/character token per §4.3: 'c' ASCII
// literal, nnnnH/nnnnh hex, nnnnQ/nnnnq octal, nnnnB/nnnnb binary, or a
// plain decimal. max bounds the accepted range (255 for byte context,
// 65535 for address context).
func parseNumber(tok string, max int64) (int64, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty operand")
	}

	if len(tok) >= 3 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		return int64(tok[1]), nil
	}

	upper := strings.ToUpper(tok)
	if len(tok) >= 2 && isDigit(tok[0]) {
		switch upper[len(upper)-1] {
		case 'H':
			return parseRadix(upper[:len(upper)-1], 16, max)
		case 'Q':
			return parseRadix(upper[:len(upper)-1], 8, max)
		case 'B':
			return parseRadix(upper[:len(upper)-1], 2, max)
		}
	}

	return parseRadix(tok, 10, max)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func parseRadix(digits string, base int, max int64) (int64, error) {
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", digits, err)
	}
	if v < 0 || v > max {
		return 0, fmt.Errorf("value %d out of range (max %d)", v, max)
	}
	return v, nil
}

// parseByte parses tok as a byte-context number in [0,255].
func parseByte(tok string) (byte, error) {
	v, err := parseNumber(tok, 255)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

// parseAddr parses tok as an address-context number in [0,65535].
func parseAddr(tok string) (uint16, error) {
	v, err := parseNumber(tok, 65535)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// looksLikeLabel reports whether tok starts with a letter or '_', which by §4.3
// means it is a symbolic reference rather than a numeric literal (numbers
// always begin with a digit, including the 0-prefixed forms like 0FFH).
func looksLikeLabel(tok string) bool {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return false
	}
	c := tok[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}
