package main

import (
	"github.com/jayeung12/sv-maker/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
