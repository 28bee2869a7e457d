package main

import (
	"github.com/markusressel/spiro2go/cmd"
)

func main() {
	cmd.Execute()
}
