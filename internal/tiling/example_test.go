package tiling

import (
	"context"
	"fmt"
)

// ExampleNewCounter demonstrates wrapping each counting strategy.
func ExampleNewCounter() {
	recurrence := NewCounter(&LinearRecurrence{})
	profile := NewCounter(&ProfileDynamic{})
	enumeration := NewCounter(&ExhaustiveEnumeration{})

	fmt.Println(recurrence.Name())
	fmt.Println(profile.Name())
	fmt.Println(enumeration.Name())
	// Output:
	// Linear Recurrence (O(n), Exact)
	// Profile DP (O(n), Bitmask)
	// Backtracking Enumeration (Exhaustive)
}

// ExampleNewDefaultFactory demonstrates obtaining pre-registered counters
// by name.
func ExampleNewDefaultFactory() {
	factory := NewDefaultFactory()

	// List the available counting methods.
	fmt.Println(factory.List())

	counter, err := factory.Get("profile")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	count, err := counter.Count(context.Background(), nil, 10, Options{})
	if err != nil {
		fmt.Printf("Count error: %v\n", err)
		return
	}

	fmt.Println(count)
	// Output:
	// [enumeration profile recurrence]
	// 78243
}

// ExampleTileCounter_CountWithObservers demonstrates observer-based
// progress tracking during a count.
func ExampleTileCounter_CountWithObservers() {
	counter := NewCounter(&ProfileDynamic{}).(*TileCounter)

	subject := NewProgressSubject()
	updates := make(chan ProgressUpdate, 100)
	subject.Register(NewChannelObserver(updates))

	count, err := counter.CountWithObservers(context.Background(), subject, 0, 12, Options{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Drain the progress channel.
	close(updates)
	var lastProgress float64
	for update := range updates {
		lastProgress = update.Value
	}

	fmt.Println(count)
	fmt.Println(lastProgress)
	// Output:
	// 808395
	// 1
}

// ExampleEnumerator_Walk counts tilings by visiting each one.
func ExampleEnumerator_Walk() {
	enumerator, err := NewEnumerator(2)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	visits := 0
	err = enumerator.Walk(context.Background(), func(Tiling) error {
		visits++
		return nil
	})
	if err != nil {
		fmt.Printf("Walk error: %v\n", err)
		return
	}

	fmt.Printf("tilings of a 2x2 floor: %d\n", visits)
	// Output:
	// tilings of a 2x2 floor: 7
}

// ExampleRenderer_Render draws the all-domino tiling of a 2×1 floor. The
// missing middle segment marks the vertical domino.
func ExampleRenderer_Render() {
	tl := Tiling{Width: 1, Cells: [Rows][]int{{1}, {1}}}

	diagram, err := NewRenderer().Render(tl)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Print(diagram)
	// Output:
	// +---+
	// | 2 |
	// +   +
	// | 2 |
	// +---+
}

// ExampleSequence prints the first few terms of the tiling count sequence.
func ExampleSequence() {
	for n, count := range Sequence(5) {
		fmt.Printf("a(%d) = %s\n", n, count)
	}
	// Output:
	// a(0) = 1
	// a(1) = 2
	// a(2) = 7
	// a(3) = 22
	// a(4) = 71
	// a(5) = 228
}
