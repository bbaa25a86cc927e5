package main

import (
	"github.com/jjtimmons/dseq/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
