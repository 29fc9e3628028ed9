package main

import (
	"os"

	"github.com/harrison/rl/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(cmd.NewRootCommand()))
}
