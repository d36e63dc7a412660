package test

import "math/rand/v2"

// RandomElement panics on an empty list.
func RandomElement[T any](list ...T) T {
	return list[rand.IntN(len(list))]
}
