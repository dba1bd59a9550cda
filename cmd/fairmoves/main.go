package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lox/fairmoves/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a round against the computer (default)"`
	Table    TableCmd         `cmd:"" help:"Print the outcome table for a move list"`
	Verify   VerifyCmd        `cmd:"" help:"Check a revealed key and move against a published HMAC"`
	Simulate SimulateCmd      `cmd:"" help:"Play many automated rounds and report fairness statistics"`
}

// exitCode ends the process with the given status once any message has
// already been shown to the user.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fairmoves"),
		kong.Description("Provably fair rock-paper-scissors for any odd number of moves"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath,
		},
	)

	err := ctx.Run(&cli.Globals)
	var code exitCode
	if errors.As(err, &code) {
		os.Exit(int(code))
	}
	ctx.FatalIfErrorf(err)
}
