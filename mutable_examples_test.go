package debounce_test

import (
	"fmt"
	"time"

	debounce "github.com/ChaitanyaGidwani/Hacktoberfest2025c"
)

func ExampleNewMutable() {
	// Create a new debounced function that will wait 100 milliseconds before
	// calling the last given callback function.
	debounced := debounce.NewMutable(100 * time.Millisecond)

	debounced(func() { fmt.Println("Hello, world! #1") })
	time.Sleep(75 * time.Millisecond) // +75ms = 75ms
	debounced(func() { fmt.Println("Hello, world! #2") })
	time.Sleep(75 * time.Millisecond) // +75ms = 150ms
	debounced(func() { fmt.Println("Hello, world! #3") })
	time.Sleep(150 * time.Millisecond) // +150ms = 300ms, wait expired at 250ms

	debounced(func() { fmt.Println("Hello, world! #4") })
	time.Sleep(75 * time.Millisecond) // +75ms = 375ms
	debounced(func() { fmt.Println("Hello, world! #5") })
	time.Sleep(75 * time.Millisecond) // +75ms = 450ms
	debounced(func() { fmt.Println("Hello, world! #6") })
	time.Sleep(150 * time.Millisecond) // +150ms = 600ms, wait expired at 550ms

	// Output:
	// Hello, world! #3
	// Hello, world! #6
}
