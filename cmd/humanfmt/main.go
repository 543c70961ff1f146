package main

import (
	"os"

	"github.com/msto63/humanfmt/cmd/humanfmt/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
