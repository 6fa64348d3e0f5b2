package primitive_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"param-supplier/primitive"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     primitive.KindEnum
		text     string
		expected any
	}{
		{"int", primitive.KindInt, "-12", -12},
		{"int8", primitive.KindInt8, "127", int8(127)},
		{"int16 hex", primitive.KindInt16, "0x10", int16(16)},
		{"int32 binary", primitive.KindInt32, "0b101", int32(5)},
		{"int64", primitive.KindInt64, "9000000000", int64(9000000000)},
		{"uint", primitive.KindUint, "3", uint(3)},
		{"uint8", primitive.KindUint8, "255", uint8(255)},
		{"uint16", primitive.KindUint16, "65535", uint16(65535)},
		{"uint32", primitive.KindUint32, "0o17", uint32(15)},
		{"uint64", primitive.KindUint64, "18446744073709551615", uint64(18446744073709551615)},
		{"float32", primitive.KindFloat32, "1.5", float32(1.5)},
		{"float64", primitive.KindFloat64, "-2.25e2", -225.0},
		{"bool true", primitive.KindBool, "TRUE", true},
		{"bool yes", primitive.KindBool, "yes", true},
		{"bool off", primitive.KindBool, "off", false},
		{"bool zero", primitive.KindBool, "0", false},
		{"char", primitive.KindChar, "é", primitive.Char('é')},
		{"char escape", primitive.KindChar, `\u0041`, primitive.Char('A')},
		{"string keeps spaces", primitive.KindString, " a b ", " a b "},
		{"duration", primitive.KindDuration, "2h45m", 2*time.Hour + 45*time.Minute},
		{"blank is no value", primitive.KindFloat64, "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := primitive.Parse(tt.kind, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind primitive.KindEnum
		text string
		err  error
	}{
		{"int overflow", primitive.KindInt8, "128", nil},
		{"not a number", primitive.KindInt, "abc", nil},
		{"negative unsigned", primitive.KindUint, "-1", nil},
		{"bool", primitive.KindBool, "maybe", primitive.ErrInvalidBool},
		{"char", primitive.KindChar, "ab", primitive.ErrInvalidChar},
		{"unknown kind", primitive.KindEnum(0), "1", primitive.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := primitive.Parse(tt.kind, tt.text)
			require.Error(t, err)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestKindType(t *testing.T) {
	t.Parallel()

	for kind := primitive.KindEnum(1); int(kind) < primitive.KindTotal; kind++ {
		rtype := kind.Type()
		require.NotNil(t, rtype, kind.String())
		assert.Equal(t, kind, primitive.FromReflectType(rtype))
	}

	assert.Nil(t, primitive.KindEnum(0).Type())
	assert.Equal(t, reflect.TypeFor[primitive.Char](), primitive.KindChar.Type())
}

func TestKindBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, primitive.KindInt8.Bits())
	assert.Equal(t, 32, primitive.KindFloat32.Bits())
	assert.Equal(t, 64, primitive.KindUint64.Bits())
	assert.Contains(t, []int{32, 64}, primitive.KindInt.Bits())
	assert.Panics(t, func() { _ = primitive.KindBool.Bits() })
}
