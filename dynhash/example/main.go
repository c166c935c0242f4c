package main

import (
	"fmt"

	"github.com/gollum18/godex/dynhash"
)

func main() {
	dh := dynhash.New(3, 1.0, dynhash.LeftToRight)

	words := []string{
		"alpha", "beta", "gamma", "delta", "epsilon",
		"zeta", "eta", "theta", "iota", "kappa",
	}

	for i, word := range words {
		if err := dh.Add([]byte(word), i); err != nil {
			panic(err)
		}
	}

	fmt.Printf("len=%d height=%d\n", dh.Len(), dh.Height())
	fmt.Print(dh.Dump())

	dh.Iter(func(it dynhash.Item) bool {
		fmt.Printf("(%s => %v)\n", it.Key, it.Val)
		return true
	})

	for _, word := range []string{"alpha", "omega"} {
		fmt.Printf("contains %s: %v\n", word, dh.Contains([]byte(word)))
	}

	for _, word := range words {
		dh.Delete([]byte(word))
	}

	fmt.Printf("after depletion: len=%d height=%d\n", dh.Len(), dh.Height())
}
