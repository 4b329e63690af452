package permiter_test

import (
	"fmt"
	"slices"

	permiter "github.com/isgasho/permutation-iterator"
)

func ExamplePermutor() {
	p, err := permiter.NewPermutorWithSeed(5, 42)
	if err != nil {
		panic(err)
	}
	var values []uint64
	for v := range p.All() {
		values = append(values, v)
	}
	// The order depends on the key; the set never does.
	slices.Sort(values)
	fmt.Println(values)
	// Output:
	// [0 1 2 3 4]
}

func ExamplePairPermutor() {
	pp, err := permiter.NewPairPermutor(3, 7)
	if err != nil {
		panic(err)
	}
	pairs := 0
	for range pp.All() {
		pairs++
	}
	fmt.Println(pairs)
	// Output:
	// 21
}
