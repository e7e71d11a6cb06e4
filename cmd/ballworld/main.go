package main

import (
	"fmt"
	"os"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"window"}
	}
	reg := registry(os.Stdout)
	if err := reg.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, "ballworld:", err)
		fmt.Fprintln(os.Stderr, "commands:")
		reg.Usage(os.Stderr)
		os.Exit(1)
	}
}
