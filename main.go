package main

import (
	"github.com/fabzclean/pos/cmd"
)

func main() {
	cmd.Start()
}
