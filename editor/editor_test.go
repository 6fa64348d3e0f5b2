package editor_test

import (
	"errors"
	"net/netip"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"param-supplier/editor"
	"param-supplier/primitive"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	r := editor.New()

	tests := []struct {
		rtype    reflect.Type
		text     string
		expected any
	}{
		{reflect.TypeFor[int](), "10", 10},
		{reflect.TypeFor[int64](), "-7", int64(-7)},
		{reflect.TypeFor[int16](), "0x7f", int16(127)},
		{reflect.TypeFor[uint8](), "200", uint8(200)},
		{reflect.TypeFor[float32](), "0.5", float32(0.5)},
		{reflect.TypeFor[float64](), "3.25", 3.25},
		{reflect.TypeFor[bool](), "true", true},
		{reflect.TypeFor[primitive.Char](), "z", primitive.Char('z')},
		{reflect.TypeFor[time.Duration](), "1m", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.rtype.String(), func(t *testing.T) {
			t.Parallel()

			fn, ok := r.Find(tt.rtype)
			require.True(t, ok)

			v, err := fn(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	_, ok := r.Find(reflect.TypeFor[string]())
	assert.False(t, ok, "strings pass through the fallback")

	assert.Equal(t, primitive.KindTotal-2, r.Len())
}

func TestExactTypeMatch(t *testing.T) {
	t.Parallel()

	type myInt int

	r := editor.New()

	_, ok := r.Find(reflect.TypeFor[myInt]())
	assert.False(t, ok)

	_, ok = r.Find(reflect.TypeFor[*int]())
	assert.False(t, ok)
}

func TestBlankTextHasNoValue(t *testing.T) {
	t.Parallel()

	fn, ok := editor.New().Find(reflect.TypeFor[int]())
	require.True(t, ok)

	v, err := fn("  ")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	type money struct{ cents int64 }

	r := editor.NewEmpty()
	assert.Equal(t, 0, r.Len())

	editor.Register(r, func(text string) (money, error) {
		if !strings.HasPrefix(text, "$") {
			return money{}, errors.New("missing currency")
		}

		return money{cents: int64(len(text))}, nil
	})

	fn, ok := r.Find(reflect.TypeFor[money]())
	require.True(t, ok)

	v, err := fn("$12")
	require.NoError(t, err)
	assert.Equal(t, money{cents: 3}, v)

	_, err = fn("12")
	assert.EqualError(t, err, "missing currency")
}

func TestRegisterReplaces(t *testing.T) {
	t.Parallel()

	r := editor.New()
	r.Register(reflect.TypeFor[int](), func(string) (any, error) { return 42, nil })

	fn, _ := r.Find(reflect.TypeFor[int]())
	v, err := fn("1")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestRegisterUnmarshaler(t *testing.T) {
	t.Parallel()

	r := editor.NewEmpty()
	editor.RegisterUnmarshaler[netip.Addr](r)

	fn, ok := r.Find(reflect.TypeFor[netip.Addr]())
	require.True(t, ok)

	v, err := fn("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), v)

	v, err = fn("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = fn("not-an-ip")
	require.Error(t, err)
}

func TestTypes(t *testing.T) {
	t.Parallel()

	r := editor.NewEmpty()
	editor.Register(r, func(string) (string, error) { return "", nil })
	editor.Register(r, func(string) (bool, error) { return false, nil })

	assert.Equal(t, []reflect.Type{reflect.TypeFor[bool](), reflect.TypeFor[string]()}, r.Types())
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := editor.New()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)

		go func() {
			defer wg.Done()
			r.Register(reflect.ArrayOf(i+1, reflect.TypeFor[int]()), func(string) (any, error) { return i, nil })
		}()

		go func() {
			defer wg.Done()
			_, ok := r.Find(reflect.TypeFor[int]())
			assert.True(t, ok)
		}()
	}

	wg.Wait()
	assert.Equal(t, primitive.KindTotal-2+8, r.Len())
}
