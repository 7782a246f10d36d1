package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/cmd/rentald/app"
	"github.com/iov-one/rentweave/commands/server"
	"github.com/spf13/pflag"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".rentald")
	varHome = pflag.String(flagHome, defaultHome, "directory to store files under")

	// everything after the command name belongs to the command
	pflag.CommandLine.SetInterspersed(false)
	pflag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("rentald")
	fmt.Println("        Rental escrow node")
	fmt.Println("")
	fmt.Println("help    Print this message")
	fmt.Println("init    Initialize app options in genesis file")
	fmt.Println("        [ticker] [hex address of the funded account]")
	fmt.Println("start   Run the abci server")
	fmt.Println("        --bind, --debug, --log-level override " + server.ConfigFile)
	fmt.Println("version Print the app version")
	fmt.Println(`
  --home string
        directory to store files under (default "$HOME/.rentald")`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "rentald")

	pflag.Parse()
	if pflag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := pflag.Arg(0)
	rest := pflag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "version":
		fmt.Println(rentweave.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
