// Command dcarr-demo exercises the deque as a stack, a queue, and a sortable
// sequence in one run.
package main

import (
	"fmt"

	"github.com/zuiderkwast/dcarr"
)

func dump(d *dcarr.Deque[int]) {
	fmt.Printf("Deque contents (length=%d, capacity=%d):\n", d.Len(), d.Cap())
	for v := range d.Iter() {
		fmt.Printf(" %d", v)
	}
	fmt.Println()
}

func main() {
	var d dcarr.Deque[int]

	fmt.Println("Pushing odd numbers and prepending even numbers 0 to 14.")
	for i := 0; i < 15; i++ {
		if i%2 == 1 {
			d.PushBack(i)
		} else {
			d.PushFront(i)
		}
	}

	fmt.Println("Inserting 100 at position 9.")
	if err := d.Insert(9, 100); err != nil {
		panic(err)
	}

	dump(&d)

	fmt.Println("Sorting.")
	d.Sort(func(a, b int) int { return a - b })
	dump(&d)

	for d.Len() > 0 {
		if d.Len()%3 != 0 {
			v, _ := d.PopFront()
			fmt.Printf("Shift %d. ", v)
		} else {
			v, _ := d.PopBack()
			fmt.Printf("Pop %d. ", v)
		}
		if d.Len()%4 == 0 {
			fmt.Println()
			dump(&d)
		}
	}

	d.Release()
}
