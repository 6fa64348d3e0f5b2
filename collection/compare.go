package collection

import (
	"cmp"
	"fmt"
	"reflect"
	"time"
)

type timeLike interface {
	UTC() time.Time
}

// compare orders values of mixed dynamic types: numbers numerically, times chronologically,
// strings and bools naturally, anything else by its formatted text.
func compare(a, b any) int {
	if ta, ok := a.(timeLike); ok {
		if tb, ok := b.(timeLike); ok {
			return ta.UTC().Compare(tb.UTC())
		}
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() {
		ka, kb := numberClass(va.Kind()), numberClass(vb.Kind())

		switch {
		case ka == classInt && kb == classInt:
			return cmp.Compare(va.Int(), vb.Int())
		case ka == classUint && kb == classUint:
			return cmp.Compare(va.Uint(), vb.Uint())
		case ka != classNone && kb != classNone:
			return cmp.Compare(asFloat(va, ka), asFloat(vb, kb))
		case va.Kind() == reflect.String && vb.Kind() == reflect.String:
			return cmp.Compare(va.String(), vb.String())
		case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
			return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
		}
	}

	if c := cmp.Compare(fmt.Sprint(a), fmt.Sprint(b)); c != 0 {
		return c
	}

	return cmp.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
}

type class int

const (
	classNone class = iota
	classInt
	classUint
	classFloat
)

func numberClass(k reflect.Kind) class {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	default:
		return classNone
	}
}

func asFloat(v reflect.Value, c class) float64 {
	switch c {
	case classInt:
		return float64(v.Int())
	case classUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
