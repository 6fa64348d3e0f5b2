package converter

import (
	"errors"
	"reflect"
	"runtime"
	"strings"

	"param-supplier/fixture"
	"param-supplier/internal/common"
	"param-supplier/utils"
)

var (
	ErrIsNotAConverter         = errors.New("provided function is not a recognizable converter")
	ErrConverterIsNotAFunction = errors.New("provided converter is not a function")
	ErrDoublePointer           = errors.New("converter function does not support double pointers")
)

var (
	rowType   = reflect.TypeFor[fixture.Row]()
	errorType = reflect.TypeFor[error]()
)

// Signature describes a converter function given as a plain Go func.
type Signature struct {
	Dst          reflect.Type
	PackagePath  string
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool
}

// Describe inspects fn and returns its Signature if it is a valid converter function.
//
// Supports interfaces:
//   - func(row fixture.Row) (dst Type)
//   - func(row fixture.Row) (dst Type, bool)
//   - func(row fixture.Row) (dst Type, error)
//   - func(row fixture.Row) (dst Type, bool, error)
func Describe(fn any) (Signature, error) {
	if fn == nil {
		return Signature{}, ErrConverterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Signature{}, ErrConverterIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return Signature{}, ErrIsNotAConverter
	}

	if fnType.In(0) != rowType {
		return Signature{}, ErrIsNotAConverter
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Signature{}, ErrDoublePointer
	}

	pkgPath, name := splitFuncName(runtime.FuncForPC(fnVal.Pointer()).Name())

	sig := Signature{
		Dst:          dst,
		Name:         name,
		PackagePath:  pkgPath,
		PackageAlias: common.PkgAlias(pkgPath),
	}

	switch fnType.NumOut() {
	default:
		return Signature{}, ErrIsNotAConverter

	case 1:
		return sig, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Signature{}, ErrIsNotAConverter
		case last.Kind() == reflect.Bool:
			sig.HasBool = true
		case isError(last):
			sig.HasErr = true
		}
		return sig, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Signature{}, ErrIsNotAConverter
		}

		sig.HasBool = true
		sig.HasErr = true
		return sig, nil
	}
}

// RegisterFunc registers a plain Go converter function for its result type.
func (r *Registry) RegisterFunc(fn any) (Signature, error) {
	sig, err := Describe(fn)
	if err != nil {
		return Signature{}, err
	}

	fnVal := reflect.ValueOf(fn)

	r.Register(sig.Dst, func(row fixture.Row) (any, error) {
		out := fnVal.Call([]reflect.Value{reflect.ValueOf(row)})

		if sig.HasErr {
			if errVal := out[len(out)-1]; !errVal.IsNil() {
				return nil, errVal.Interface().(error)
			}
		}

		if sig.HasBool && !out[1].Bool() {
			return nil, nil
		}

		return out[0].Interface(), nil
	})

	return sig, nil
}

// splitFuncName splits "example.com/pkg.Func" at the first dot after the last slash.
func splitFuncName(qualified string) (pkgPath, name string) {
	slash := strings.LastIndex(qualified, "/") + 1
	pkg, name := utils.Unpack2(strings.SplitN(qualified[slash:], ".", 2))

	return qualified[:slash] + pkg, name
}

func isError(t reflect.Type) bool {
	return t.Implements(errorType)
}
