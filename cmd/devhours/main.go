package main

import (
	"os"

	"github.com/alecthomas/kong"
)

var cli struct {
	Config     string   `short:"c" help:"Config file. Default is devhours/config.yaml inside the user config dir." type:"path"`
	Dir        string   `short:"d" help:"Directory to search for git repositories. Default is the DEV_DIR env var or ~/Documents/Development."`
	Email      []string `short:"e" help:"Part of the author email that identifies you. Can be repeated."`
	IgnoreCase bool     `short:"i" help:"Match author emails ignoring case."`
	Workers    int      `short:"j" help:"Number of repositories to process in parallel."`
	Progress   bool     `help:"Show a progress bar instead of one line per repository."`
	Verbose    bool     `short:"v" help:"Print a summary of what was processed."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("devhours"),
		kong.Description("Show at which hours of the day you commit, across all git repositories in a directory."),
		kong.ShortUsageOnError(),
	)

	err := run(os.Stdout)
	ctx.FatalIfErrorf(err)
}
