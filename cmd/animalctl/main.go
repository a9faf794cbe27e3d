// Package main provides animalctl, a command line client for the animal tracker API.
package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "animalctl:", err)
		os.Exit(1)
	}
}
