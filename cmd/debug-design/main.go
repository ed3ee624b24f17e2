// debug-design cross-checks a .qds file against two independent
// S-expression parsers. Useful when a hand-edited file fails to load
// and the error message is not enough.
package main

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/qds"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/qds/qdsexp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug-design <design_file>")
		os.Exit(1)
	}

	filename := os.Args[1]
	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	info, _ := file.Stat()
	fmt.Printf("File size: %d bytes\n", info.Size())

	fmt.Println("\nAttempt 1: qdsexp.Parse...")
	nodes, err := qdsexp.Parse(file)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
	} else {
		fmt.Printf("  Success! Parsed %d top-level nodes\n", len(nodes))
		for _, node := range nodes {
			if list, ok := node.(qdsexp.List); ok {
				fmt.Printf("  Head: %s (%d elements)\n", list.Head(), len(list))
			}
		}
	}

	file.Seek(0, 0)

	fmt.Println("\nAttempt 2: chewxy sexp.Parse...")
	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
	} else {
		fmt.Printf("  Success! Parsed %d s-expressions\n", len(sexps))
		if len(sexps) > 0 && !sexps[0].IsLeaf() {
			fmt.Printf("  Leaf count: %d\n", sexps[0].LeafCount())
		}
	}

	file.Seek(0, 0)

	fmt.Println("\nAttempt 3: full qds.Parse...")
	d, err := qds.Parse(file)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  Success! Design %q: %d polys, %d paths, %d junctions, %d pins\n",
		d.Name, len(d.Polys), len(d.Paths), len(d.Junctions), len(d.Pins))
}
