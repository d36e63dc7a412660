package variantset

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/amirrezaask/sumtype/test"
)

type values struct {
	f *gofakeit.Faker
}

func (g values) random() Value {
	if g.f.Bool() {
		return A(g.f.Word())
	}
	return B(g.f.Float64Range(-1e6, 1e6))
}

func TestInvariants(t *testing.T) {
	run := func(name string, f func(tt *test.T, gen values)) {
		t.Run(name, func(t *testing.T) {
			tt := test.Test(t)
			f(tt, values{tt.Fakery()})
		})
	}

	run("upsert makes every value of the variant contained", func(tt *test.T, gen values) {
		s := newValueSet()
		x := gen.random()
		s.Upsert(x)
		tt.IsTrue(s.Contains(x))
		switch x.(type) {
		case A:
			tt.IsTrue(s.Contains(A(gen.f.Word())))
		case B:
			tt.IsTrue(s.Contains(B(gen.f.Float64Range(0, 1))))
		}
	})

	run("same variant upsert keeps the last value", func(tt *test.T, gen values) {
		s := newValueSet()
		first, second := A(gen.f.Word()), A(gen.f.Word()+"!")
		s.Upsert(first)
		s.Upsert(second)
		v, ok := s.Get(KindA)
		tt.IsTrue(ok)
		tt.AssertEq(Value(second), v)
		tt.AssertEq(1, s.Len())
	})

	run("distinct variants are both retrievable", func(tt *test.T, gen values) {
		s := newValueSet()
		x, y := A(gen.f.Word()), B(gen.f.Float64Range(-10, 10))
		s.Upsert(x)
		s.Upsert(y)
		got, _ := s.Get(KindA)
		tt.AssertEq(Value(x), got)
		got, _ = s.Get(KindB)
		tt.AssertEq(Value(y), got)
	})

	run("remove reports presence once", func(tt *test.T, gen values) {
		s := newValueSet()
		x := gen.random()
		s.Upsert(x)
		tt.IsTrue(s.Remove(x.Tag()))
		tt.IsFalse(s.Remove(x.Tag()))
		_, ok := s.Get(x.Tag())
		tt.IsFalse(ok)
	})

	run("reads do not mutate", func(tt *test.T, gen values) {
		s := newValueSet()
		x := A(gen.f.Word())
		s.Upsert(x)
		for i := 0; i < 10; i++ {
			v, ok := s.Get(KindA)
			tt.IsTrue(ok)
			tt.AssertEq(Value(x), v)
			tt.IsTrue(s.Contains(A("")))
			tt.IsFalse(s.Contains(B(0)))
			_, ok = s.Get(KindB)
			tt.IsFalse(ok)
		}
		tt.AssertEq(1, s.Len())
	})

	run("stored payload equals inserted payload", func(tt *test.T, gen values) {
		s := newValueSet()
		for i := 0; i < 50; i++ {
			x := gen.random()
			s.Upsert(x)
			v, ok := s.Get(x.Tag())
			tt.IsTrue(ok)
			tt.AssertEq(x, v)
		}
	})
}

// TestRandomOperations drives the set with a random mix of operations and
// compares it against a plain map after every step.
func TestRandomOperations(t *testing.T) {
	tt := test.Test(t)
	gen := values{tt.Fakery()}

	s := newValueSet()
	model := map[Kind]Value{}
	kinds := []Kind{KindA, KindB}

	for i := 0; i < 2000; i++ {
		switch gen.f.IntRange(0, 3) {
		case 0:
			v := gen.random()
			s.Upsert(v)
			model[v.Tag()] = v
		case 1:
			k := test.RandomElement(kinds...)
			_, had := model[k]
			tt.AssertEq(had, s.Remove(k), "remove %s at step %d", k, i)
			delete(model, k)
		case 2:
			k := test.RandomElement(kinds...)
			want, had := model[k]
			got, ok := s.Get(k)
			tt.AssertEq(had, ok, "get %s at step %d", k, i)
			if had {
				tt.AssertEq(want, got, "get %s at step %d", k, i)
			}
		case 3:
			probe := gen.random()
			_, had := model[probe.Tag()]
			tt.AssertEq(had, s.Contains(probe), "contains %v at step %d", probe, i)
		}
		tt.AssertEq(len(model), s.Len())
		tt.AssertEq(len(model), s.Tags().Len())
	}

	for _, k := range kinds {
		_, had := model[k]
		tt.AssertEq(had, s.Remove(k), "final remove %s", k)
	}
	tt.IsEmpty(s.Tags())
	tt.AssertEq("VariantSet{}", s.String())
}
