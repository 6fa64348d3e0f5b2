package primitive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrUnknownKind = errors.New("kind has no text parser")
	ErrInvalidBool = errors.New("not a recognizable boolean")
	ErrInvalidChar = errors.New("not a single character")
)

type parser func(kind KindEnum, text string) (any, error)

var parsers map[KindEnum]parser

func init() {
	parsers = map[KindEnum]parser{}

	for kind := KindEnum(0); int(kind) < KindTotal; kind++ {
		switch {
		case kind.IsSigned():
			parsers[kind] = parseSigned
		case kind.IsUnsigned():
			parsers[kind] = parseUnsigned
		case kind.IsFloat():
			parsers[kind] = parseFloat
		}
	}

	parsers[KindBool] = parseBool
	parsers[KindChar] = parseChar
	parsers[KindString] = func(_ KindEnum, text string) (any, error) { return text, nil }
	parsers[KindDuration] = func(_ KindEnum, text string) (any, error) { return time.ParseDuration(text) }
}

// Parse converts text into a value of the given kind. Surrounding whitespace is ignored, and blank
// text yields (nil, nil): a blank field carries no value. Strings are returned as is.
func Parse(kind KindEnum, text string) (any, error) {
	p, ok := parsers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	if kind == KindString {
		return text, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	v, err := p(kind, text)
	if err != nil {
		return nil, fmt.Errorf("parse %q as %s: %w", text, kind.Type(), err)
	}

	return v, nil
}

// integers accept base prefixes (0x, 0o, 0b) and leading-zero octal, like strconv with base 0
func parseSigned(kind KindEnum, text string) (any, error) {
	n, err := strconv.ParseInt(text, 0, kind.Bits())
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindInt8:
		return int8(n), nil
	case KindInt16:
		return int16(n), nil
	case KindInt32:
		return int32(n), nil
	case KindInt64:
		return n, nil
	default:
		return int(n), nil
	}
}

func parseUnsigned(kind KindEnum, text string) (any, error) {
	n, err := strconv.ParseUint(text, 0, kind.Bits())
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindUint8:
		return uint8(n), nil
	case KindUint16:
		return uint16(n), nil
	case KindUint32:
		return uint32(n), nil
	case KindUint64:
		return n, nil
	default:
		return uint(n), nil
	}
}

func parseFloat(kind KindEnum, text string) (any, error) {
	f, err := strconv.ParseFloat(text, kind.Bits())
	if err != nil {
		return nil, err
	}

	if kind == KindFloat32 {
		return float32(f), nil
	}

	return f, nil
}

// yes, no, on, off, true, false, 1, 0
func parseBool(_ KindEnum, text string) (any, error) {
	switch strings.ToLower(text) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return nil, ErrInvalidBool
	}
}

// a single rune, or a \uXXXX escape
func parseChar(_ KindEnum, text string) (any, error) {
	if utf8.RuneCountInString(text) == 1 {
		r, _ := utf8.DecodeRuneInString(text)
		return Char(r), nil
	}

	if strings.HasPrefix(text, `\u`) && len(text) == 6 {
		n, err := strconv.ParseUint(text[2:], 16, 32)
		if err != nil {
			return nil, err
		}

		return Char(rune(n)), nil
	}

	return nil, ErrInvalidChar
}
