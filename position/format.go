package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned by Parse for text not in the "{a,b,...}" form.
var ErrParse = errors.New("position: malformed position literal")

// String renders p as "{a,b,...}" over its stored components.
func (p Pos) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')

	return sb.String()
}

// Symbolic renders p relative to a named site, naming axes i, j, k, ...:
// Symbolic('x') of {1,0,-2} is "x + i - 2*k".
func (p Pos) Symbolic(variable byte) string {
	var sb strings.Builder
	sb.WriteByte(variable)
	for i, v := range p {
		if v == 0 {
			continue
		}
		if v > 0 {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" - ")
		}
		if abs(v) != 1 {
			sb.WriteString(strconv.Itoa(abs(v)))
			sb.WriteByte('*')
		}
		sb.WriteByte(byte('i' + i))
	}

	return sb.String()
}

// Parse reads the String form back into a Pos.
func Parse(s string) (Pos, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return Pos{}, nil
	}
	fields := strings.Split(body, ",")
	out := make(Pos, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: component %d of %q", ErrParse, i, s)
		}
		out[i] = v
	}

	return out, nil
}
