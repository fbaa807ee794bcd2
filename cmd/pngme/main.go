package main

import (
	"github.com/nspcc-dev/pngme/cmd/internal/cmderr"
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/commands"
)

func main() {
	err := commands.NewRoot().Execute()
	cmderr.ExitOnErr(err)
}
