package main

import (
	"context"
	"os"
	"time"

	"github.com/malusev998/privat-rates/cli/cmd"
)

func main() {
	os.Exit(cmd.Execute(&cmd.Config{
		Ctx:  context.Background(),
		Now:  time.Now,
		Args: os.Args[1:],
		Out:  os.Stdout,
		Err:  os.Stderr,
	}))
}
