package main

import (
	"os"

	"zfsbak/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
