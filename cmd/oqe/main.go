package main

import "github.com/OpenQuantumLab/OpenQuantumEDA/cmd/oqe/cmd"

func main() {
	cmd.Execute()
}
