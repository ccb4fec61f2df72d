// Package deepequal compares test values and reports differences as a unified diff
package deepequal

import (
	"fmt"
	"reflect"

	"github.com/pmezard/go-difflib/difflib"
)

type tf interface {
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// documents are diffed as is, everything else by its %+v form
func text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprintf("%+v", v)
}

func testDeepEqual(fn func(format string, args ...any), name string, expected any, actual any) {
	if reflect.DeepEqual(expected, actual) {
		return
	}

	udiff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(text(expected)),
		B:        difflib.SplitLines(text(actual)),
		FromFile: fmt.Sprintf("%s expected", name),
		ToFile:   fmt.Sprintf("%s actual", name),
		Context:  3,
	})
	if err != nil {
		panic(err)
	}
	if udiff == "" {
		// same text but different values, ex nil and empty slice
		fn("%s: expected %#v, got %#v", name, expected, actual)
		return
	}
	fn("\n%s", udiff)
}

// Error reports a difference with Errorf
func Error(t tf, name string, expected any, actual any) {
	testDeepEqual(t.Errorf, name, expected, actual)
}

// Fatal reports a difference with Fatalf
func Fatal(t tf, name string, expected any, actual any) {
	testDeepEqual(t.Fatalf, name, expected, actual)
}
