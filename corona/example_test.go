package corona_test

import (
	"fmt"

	"github.com/katalvlaran/coronas/corona"
)

// ExampleValidate shows a passing corona and a corner-gap rejection.
func ExampleValidate() {
	walk := corona.Edge{{Size: 1, Offset: 0}, {Size: 2, Offset: 1}}
	wide := corona.Edge{{Size: 1, Offset: 0}, {Size: 4, Offset: 1}}

	ok := corona.New(2, walk, walk, walk, walk)
	bad := corona.New(2, walk, walk, wide, wide)

	fmt.Println(corona.Validate(ok, corona.DefaultOptions()))
	fmt.Println(corona.Validate(bad, corona.DefaultOptions()))
	// Output:
	// ok
	// 1x1 corner gap with asymmetric edges (corner 0)
}

// ExampleCanonicalKey shows that rotations collapse to one key.
func ExampleCanonicalKey() {
	c := corona.New(1,
		corona.Edge{{Size: 3, Offset: 0}},
		corona.Edge{{Size: 2, Offset: 0}},
		corona.Edge{{Size: 4, Offset: 0}},
		corona.Edge{{Size: 2, Offset: 0}},
	)
	fmt.Println(c.CanonicalKey())
	fmt.Println(c.Rotate(2).CanonicalKey() == c.CanonicalKey())
	// Output:
	// 2^0|3^0|2^0|4^0
	// true
}
