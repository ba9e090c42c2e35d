package main

import (
	"os"

	"github.com/vipcxj/rangeconst/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
