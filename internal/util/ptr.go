// Package util holds small generic helpers shared across rnokpp packages.
package util

// Ptr returns a pointer to a copy of v. Optional parameters such as a
// constrained date of birth are passed this way.
func Ptr[T any](v T) *T {
	return &v
}
