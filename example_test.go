package ordset_test

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordset"
)

func ExampleSet_LowerBound() {
	s := ordset.New(5, 3, 8, 1, 4, 7, 9)
	for it := s.LowerBound(6); !it.IsEnd(); it.Next() {
		fmt.Println(it.Key())
	}
	fmt.Println(s.LowerBound(10) == s.End())
	// Output:
	// 7
	// 8
	// 9
	// true
}

func ExampleSet_Erase() {
	s := ordset.New(5, 3, 8, 1, 4, 7, 9)
	s.Erase(5)
	s.Erase(42)
	fmt.Println(s.Keys(), s.Len())
	// Output:
	// [1 3 4 7 8 9] 6
}

func ExampleIterator_Prev() {
	s := ordset.New("b", "c", "a")
	it := s.End()
	it.Prev()
	fmt.Println(it.Key())
	// Output:
	// c
}

func ExampleNewFunc() {
	s, err := ordset.NewFunc(strings.Compare, "Pear", "apple", "Apple")
	if err != nil {
		panic(err)
	}
	for w := range s.Backward() {
		fmt.Println(w)
	}
	// Output:
	// apple
	// Pear
	// Apple
}
