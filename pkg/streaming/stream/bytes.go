package stream

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Bytes consumes the stream and concatenates every element into a single
// byte buffer, in emission order. Elements that are not already byte-shaped
// are coerced deterministically: strings and []byte are appended as-is,
// single bytes and runes are appended as UTF-8, fmt.Stringer values via
// String(), and anything else via its "%v" rendering. On error the partial
// buffer is discarded.
func Bytes[T any](ctx context.Context, s Stream[T]) ([]byte, error) {
	buf := []byte{}
	err := s.ForEach(ctx, func(v T) {
		buf = appendValue(buf, v)
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func appendValue(buf []byte, v any) []byte {
	switch c := v.(type) {
	case []byte:
		return append(buf, c...)
	case string:
		return append(buf, c...)
	case byte:
		return append(buf, c)
	case rune:
		return utf8.AppendRune(buf, c)
	case fmt.Stringer:
		return append(buf, c.String()...)
	default:
		return fmt.Appendf(buf, "%v", c)
	}
}
