package rop

import (
	"fmt"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Display is the human-readable form of a failure value.
func Display(v any) string {
	return fmt.Sprint(v)
}

// Debug is the diagnostic form of a failure value.
func Debug(v any) string {
	return fmt.Sprintf("%#v", v)
}
