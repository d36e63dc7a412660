// Package test holds the assertion helper used across this module's tests.
package test

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/davecgh/go-spew/spew"
)

type T struct {
	*testing.T
	fakery *gofakeit.Faker
}

// Test wraps t. The bound faker gets a fresh seed which is logged so a
// failing run can be replayed with Seeded.
func Test(t *testing.T) *T {
	seed := rand.Uint64()
	t.Logf("fakery seed %d", seed)
	return Seeded(t, seed)
}

func Seeded(t *testing.T, seed uint64) *T {
	return &T{
		T:      t,
		fakery: gofakeit.New(seed),
	}
}

// Fakery returns the faker bound to this test.
func (t *T) Fakery() *gofakeit.Faker { return t.fakery }

func message(def string, msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return def
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs...)
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}

// AssertEq fails the test unless expected and have have the same dynamic
// type and are deeply equal. Both sides are dumped on failure.
func (t *T) AssertEq(expected, have any, msgAndArgs ...any) {
	t.Helper()
	if reflect.TypeOf(expected) == reflect.TypeOf(have) && reflect.DeepEqual(expected, have) {
		return
	}
	t.Fatalf("❌ %s\nexpected %s\nhave %s",
		message("values differ", msgAndArgs), spew.Sdump(expected), spew.Sdump(have))
}

func (t *T) IsTrue(b bool, msgAndArgs ...any) {
	t.Helper()
	t.AssertEq(true, b, msgAndArgs...)
}

func (t *T) IsFalse(b bool, msgAndArgs ...any) {
	t.Helper()
	t.AssertEq(false, b, msgAndArgs...)
}

// IsEmpty fails unless obj is a map, slice, array or string of length zero.
func (t *T) IsEmpty(obj any, msgAndArgs ...any) {
	t.Helper()
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Array, reflect.Slice, reflect.Map, reflect.String:
	default:
		t.Fatalf("❌ IsEmpty on %T, want map, slice, array or string", obj)
	}
	if v.Len() != 0 {
		t.Fatalf("❌ %s\nhave %s", message("expected empty", msgAndArgs), spew.Sdump(obj))
	}
}
