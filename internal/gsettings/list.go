package gsettings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidList is returned when a favorites value is not a GVariant string array.
var ErrInvalidList = errors.New("invalid string list")

// emptyList is how gsettings prints an empty string array.
const emptyList = "@as []"

// FormatList renders ids the way gsettings prints a string array,
// e.g. ['a.desktop', 'b.desktop'].
func FormatList(ids []string) string {
	if len(ids) == 0 {
		return emptyList
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		writeQuoted(&b, id)
	}
	b.WriteByte(']')
	return b.String()
}

// writeQuoted follows GVariant's printer: single quotes unless the string
// holds a single quote and no double quote.
func writeQuoted(b *strings.Builder, s string) {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	b.WriteRune(quote)
	for _, r := range s {
		switch r {
		case quote, '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		default:
			if unicode.IsPrint(r) {
				b.WriteRune(r)
			} else if r <= 0xFFFF {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				fmt.Fprintf(b, `\U%08x`, r)
			}
		}
	}
	b.WriteRune(quote)
}

// ParseList decodes a string array as printed by gsettings. It accepts the
// "@as" type annotation and either quote style.
func ParseList(s string) ([]string, error) {
	p := strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(p, "@as"); ok {
		p = strings.TrimSpace(rest)
	}
	if !strings.HasPrefix(p, "[") || !strings.HasSuffix(p, "]") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidList, s)
	}
	body := p[1 : len(p)-1]

	ids := []string{}
	i := skipSpace(body, 0)
	if i == len(body) {
		return ids, nil
	}

	for {
		id, next, err := readQuoted(body, i)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidList, s, err)
		}
		ids = append(ids, id)

		i = skipSpace(body, next)
		if i == len(body) {
			return ids, nil
		}
		if body[i] != ',' {
			return nil, fmt.Errorf("%w: %q: expected ',' at offset %d", ErrInvalidList, s, i)
		}
		i = skipSpace(body, i+1)
	}
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

// readQuoted reads one quoted element starting at s[i] and returns the
// unescaped text and the offset just past the closing quote.
func readQuoted(s string, i int) (string, int, error) {
	if i >= len(s) || (s[i] != '\'' && s[i] != '"') {
		return "", 0, fmt.Errorf("expected quote at offset %d", i)
	}
	quote := s[i]
	i++

	var b strings.Builder
	for i < len(s) {
		c := s[i]
		switch {
		case c == quote:
			return b.String(), i + 1, nil
		case c == '\\':
			if i+1 >= len(s) {
				return "", 0, errors.New("dangling escape")
			}
			n, err := unescape(&b, s, i+1)
			if err != nil {
				return "", 0, err
			}
			i = n
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, errors.New("unterminated string")
}

// unescape decodes the escape sequence whose letter is at s[i] and returns
// the offset after it.
func unescape(b *strings.Builder, s string, i int) (int, error) {
	switch c := s[i]; c {
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'v':
		b.WriteByte('\v')
	case 'u', 'U':
		width := 4
		if c == 'U' {
			width = 8
		}
		if i+1+width > len(s) {
			return 0, fmt.Errorf("short \\%c escape", c)
		}
		code, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad \\%c escape: %w", c, err)
		}
		b.WriteRune(rune(code))
		return i + 1 + width, nil
	default:
		// \\, \', \" and any other escaped byte stand for themselves.
		b.WriteByte(c)
	}
	return i + 1, nil
}
