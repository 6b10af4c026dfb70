package helpers

type Pair[T, U any] struct {
	First  T
	Second U
}
