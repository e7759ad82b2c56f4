package main

import (
	"os"

	"freeship-watcher/cmd/watcher/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
