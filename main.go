package main

import (
	"os"

	"github.com/ryansonshine/aws-cli-util-logger/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
