package main

import (
	"github.com/covers1624/jvmutils/cmd"
)

func main() {
	cmd.Execute()
}
