// Package variantset provides Set, a container that holds at most one value
// per variant of a sum type.
//
// Go has no built-in sum types, so a sum type is modelled as a set of types
// sharing an interface, paired with a small comparable tag type (usually an
// integer enum) naming the variants. Set keys its entries by that tag only;
// payloads are stored verbatim and never inspected.
//
// A Set is not safe for concurrent mutation.
package variantset

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/amirrezaask/sumtype/set"
)

// Tagged is implemented by element types that know their own variant tag.
type Tagged[K comparable] interface {
	Tag() K
}

type options struct {
	logger   *slog.Logger
	capacity int
}

// Option configures a Set built by New or NewTagged.
type Option func(*options)

// WithLogger makes the set log every mutation at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCapacity preallocates room for n variants.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// Set holds at most one T per tag K. Build one with New or NewTagged: the
// zero value has no tag projection, so Upsert, Contains and TagOf panic on it.
type Set[K comparable, T any] struct {
	items  map[K]T
	tagOf  func(T) K
	logger *slog.Logger
}

// New returns an empty set that keys values by tagOf. tagOf must return the
// same tag for two values exactly when they are the same variant.
func New[K comparable, T any](tagOf func(T) K, opts ...Option) *Set[K, T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Set[K, T]{
		items:  make(map[K]T, o.capacity),
		tagOf:  tagOf,
		logger: o.logger,
	}
}

// NewTagged returns an empty set for an element type carrying its own tag.
// A nil interface value has no variant: passing one to Upsert, Contains or
// TagOf panics.
func NewTagged[K comparable, T Tagged[K]](opts ...Option) *Set[K, T] {
	return New(func(v T) K { return v.Tag() }, opts...)
}

// TagOf returns the key item is stored under.
func (s *Set[K, T]) TagOf(item T) K {
	return s.tagOf(item)
}

// Upsert stores item under its variant tag, replacing any value of the same
// variant. It panics if tagOf does, e.g. on a nil item of a NewTagged set.
func (s *Set[K, T]) Upsert(item T) {
	tag := s.tagOf(item)
	if s.debug() {
		_, replaced := s.items[tag]
		s.logger.Debug("variant upserted", "tag", fmt.Sprint(tag), "replaced", replaced)
	}
	s.items[tag] = item
}

// Remove deletes the value stored for tag and reports whether there was one.
func (s *Set[K, T]) Remove(tag K) bool {
	if _, ok := s.items[tag]; !ok {
		return false
	}
	delete(s.items, tag)
	if s.debug() {
		s.logger.Debug("variant removed", "tag", fmt.Sprint(tag))
	}
	return true
}

// Get returns the value stored for tag.
func (s *Set[K, T]) Get(tag K) (T, bool) {
	v, ok := s.items[tag]
	return v, ok
}

// Contains reports whether a value of the same variant as probe is stored.
// The payload of probe is ignored.
func (s *Set[K, T]) Contains(probe T) bool {
	_, ok := s.items[s.tagOf(probe)]
	return ok
}

func (s *Set[K, T]) debug() bool {
	return s.logger != nil && s.logger.Enabled(context.Background(), slog.LevelDebug)
}

// Len returns the number of stored variants.
func (s *Set[K, T]) Len() int {
	return len(s.items)
}

// Tags returns the tags currently present. The result is a copy.
func (s *Set[K, T]) Tags() set.Set[K] {
	tags := make(set.Set[K], len(s.items))
	for tag := range s.items {
		tags.Add(tag)
	}
	return tags
}

// String renders the stored values sorted by their text form.
func (s *Set[K, T]) String() string {
	rendered := make([]string, 0, len(s.items))
	for _, v := range s.items {
		rendered = append(rendered, fmt.Sprint(v))
	}
	slices.Sort(rendered)
	return "VariantSet{" + strings.Join(rendered, ", ") + "}"
}

// TagOfVariant returns the tag of the variant built by variant, which is
// called once with the zero payload.
func TagOfVariant[K comparable, T, P any](s *Set[K, T], variant func(P) T) K {
	var zero P
	return s.tagOf(variant(zero))
}

// GetVariant is Get with the variant named by its constructor.
func GetVariant[K comparable, T, P any](s *Set[K, T], variant func(P) T) (T, bool) {
	return s.Get(TagOfVariant(s, variant))
}

// RemoveVariant is Remove with the variant named by its constructor.
func RemoveVariant[K comparable, T, P any](s *Set[K, T], variant func(P) T) bool {
	return s.Remove(TagOfVariant(s, variant))
}
