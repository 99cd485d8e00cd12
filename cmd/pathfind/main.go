// Command pathfind searches the directories on the PATH for a file name.
package main

import (
	"os"

	"github.com/jongio/pathfind/cli"
	"github.com/jongio/pathfind/finder"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return cli.NewCommand(finder.DefaultConfig(), os.Stdout, os.Stderr).Run(args)
}
