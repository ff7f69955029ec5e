package periodic_test

import (
	"fmt"

	"github.com/katalvlaran/realtransducer/periodic"
)

// ExampleNew shows normalization of a redundant representation.
func ExampleNew() {
	// 1101 0101 0101 … is the same sequence as 1 10 10 10 …
	v, err := periodic.New("1101", "0101")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	fmt.Println(v.Materialize(8))

	// Output:
	// 1[:10:]
	// 11010101
}

// ExampleValue_EqualInS1 contrasts raw equality with equality on the circle.
func ExampleValue_EqualInS1() {
	zero := periodic.MustNew("", "0")
	one := periodic.MustNew("", "1")
	fmt.Println(zero.Equal(one), zero.EqualInS1(one))

	half := periodic.MustNew("1", "0")
	alsoHalf := periodic.MustNew("0", "1")
	fmt.Println(half.Equal(alsoHalf), half.ApproxDefault())

	// Output:
	// false true
	// true 0.5
}
