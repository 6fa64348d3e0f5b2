package converter_test

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"param-supplier/converter"
	"param-supplier/fixture"
)

type point struct{ X, Y int }

var errNoPoint = errors.New("no point")

func pointOf(row fixture.Row) (point, error) {
	xs, ok := row.Text("x")
	if !ok {
		return point{}, errNoPoint
	}
	ys, _ := row.Text("y")

	x, err := strconv.Atoi(xs)
	if err != nil {
		return point{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return point{}, err
	}

	return point{X: x, Y: y}, nil
}

func labelOf(row fixture.Row) string {
	s, _ := row.Text("label")
	return s
}

func maybeLabel(row fixture.Row) (*string, bool) {
	s, ok := row.Text("label")
	return &s, ok
}

func full(fixture.Row) (float64, bool, error) { return 1.5, true, nil }

func wrongOrder(fixture.Row) (int, error, bool) { panic("not implemented") }
func twoArgs(fixture.Row, int) int             { panic("not implemented") }
func notARow(map[string]any) int               { panic("not implemented") }
func doublePtr(fixture.Row) **int              { panic("not implemented") }
func noResult(fixture.Row)                     {}

func ExampleDescribe() {
	sig, err := converter.Describe(pointOf)
	fmt.Println(err, sig.PackageAlias, sig.Name, sig.Dst.Name(), sig.HasBool, sig.HasErr)

	sig, err = converter.Describe(maybeLabel)
	fmt.Println(err, sig.PackageAlias, sig.Name, sig.Dst.Kind(), sig.HasBool, sig.HasErr)

	sig, err = converter.Describe(full)
	fmt.Println(err, sig.PackageAlias, sig.Name, sig.Dst.Kind(), sig.HasBool, sig.HasErr)

	_, err = converter.Describe(wrongOrder)
	fmt.Println(err)

	_, err = converter.Describe(42)
	fmt.Println(err)

	// Output:
	// <nil> converter_test pointOf point false true
	// <nil> converter_test maybeLabel ptr true false
	// <nil> converter_test full float64 true true
	// provided function is not a recognizable converter
	// provided converter is not a function
}

func TestDescribeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   any
		err  error
	}{
		{"nil", nil, converter.ErrConverterIsNotAFunction},
		{"string", "pointOf", converter.ErrConverterIsNotAFunction},
		{"two args", twoArgs, converter.ErrIsNotAConverter},
		{"not a row", notARow, converter.ErrIsNotAConverter},
		{"no result", noResult, converter.ErrIsNotAConverter},
		{"wrong order", wrongOrder, converter.ErrIsNotAConverter},
		{"double pointer", doublePtr, converter.ErrDoublePointer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := converter.Describe(tt.fn)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRegistryTyped(t *testing.T) {
	t.Parallel()

	r := converter.New()
	converter.Register(r, pointOf)

	fn, ok := r.Find(reflect.TypeFor[point]())
	require.True(t, ok)

	v, err := fn(fixture.Row{"x": "3", "y": 4})
	require.NoError(t, err)
	assert.Equal(t, point{X: 3, Y: 4}, v)

	_, err = fn(fixture.Row{"y": "4"})
	assert.ErrorIs(t, err, errNoPoint)

	_, ok = r.Find(reflect.TypeFor[*point]())
	assert.False(t, ok, "lookup is exact")
}

func TestRegisterFunc(t *testing.T) {
	t.Parallel()

	r := converter.New()

	sig, err := r.RegisterFunc(labelOf)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[string](), sig.Dst)

	_, err = r.RegisterFunc(maybeLabel)
	require.NoError(t, err)

	_, err = r.RegisterFunc(pointOf)
	require.NoError(t, err)

	_, err = r.RegisterFunc(twoArgs)
	require.ErrorIs(t, err, converter.ErrIsNotAConverter)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []reflect.Type{
		reflect.TypeFor[*string](),
		reflect.TypeFor[point](),
		reflect.TypeFor[string](),
	}, r.Types())

	fn, ok := r.Find(reflect.TypeFor[string]())
	require.True(t, ok)
	v, err := fn(fixture.Row{"label": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	fn, ok = r.Find(reflect.TypeFor[*string]())
	require.True(t, ok)
	v, err = fn(fixture.Row{})
	require.NoError(t, err)
	assert.Nil(t, v, "false flag means no value")

	fn, ok = r.Find(reflect.TypeFor[point]())
	require.True(t, ok)
	_, err = fn(fixture.Row{"x": "1", "y": "z"})
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestRegistryConcurrent(t *testing.T) {
	t.Parallel()

	r := converter.New()
	converter.Register(r, pointOf)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			fn, ok := r.Find(reflect.TypeFor[point]())
			if !assert.True(t, ok) {
				return
			}

			v, err := fn(fixture.Row{"x": i, "y": i})
			assert.NoError(t, err)
			assert.Equal(t, point{X: i, Y: i}, v)
		}()
	}

	wg.Wait()
}

func TestDescribePackagePath(t *testing.T) {
	t.Parallel()

	sig, err := converter.Describe(pointOf)
	require.NoError(t, err)
	assert.Equal(t, "param-supplier/converter_test", sig.PackagePath)
	assert.Equal(t, "converter_test", sig.PackageAlias)
	assert.Equal(t, "pointOf", sig.Name)
}
