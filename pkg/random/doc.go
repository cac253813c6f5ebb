// Package random provides a seedable, concurrency-safe random source and
// in-place shuffling.
//
// There is no package level generator. Create a Source once and pass it to
// the code that needs randomness; the same seed always produces the same
// sequence and therefore the same permutations:
//
//	src := random.New(42)
//	random.Shuffle(src, cards)
package random
