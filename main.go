package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/Takumouse/sales-dashboard2/internal/cli"
	"github.com/Takumouse/sales-dashboard2/internal/cli/report"
	"github.com/Takumouse/sales-dashboard2/internal/cli/theme"
	"github.com/Takumouse/sales-dashboard2/internal/cli/tui"
	"github.com/Takumouse/sales-dashboard2/internal/cli/web"
	"github.com/Takumouse/sales-dashboard2/internal/config"
	"github.com/Takumouse/sales-dashboard2/internal/logger"
)

const defaultConfigPath = "salesdash.yml"

var configPath string

var subcommands = map[string]cli.Command{
	"web":    web.NewCommand(),
	"report": report.NewCommand(),
	"theme":  theme.NewCommand(),
	"tui":    tui.NewCommand(),
}

var subcommandsFlagSets = map[string]*pflag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := pflag.NewFlagSet(c, pflag.ExitOnError)
		fset.StringVarP(&configPath, "config", "c", defaultConfigPath, "Configuration file")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	// ExitOnError handles parse failures
	_ = subcommandsFlagSets[commandName].Parse(os.Args[2:])

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	appLogger := logger.New(conf.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, command, conf, appLogger); err != nil {
		stop()
		appLogger.Fatal("Command failed", "command", commandName, "error", err.Error())
	}
}

func run(ctx context.Context, command cli.Command, conf *config.Config, appLogger *logger.Logger) error {
	app, err := cli.NewApp(ctx, conf, appLogger)
	if err != nil {
		return err
	}

	return errors.Join(command.Run(ctx, app), app.Close())
}

func printHelp() {
	printUsage()

	names := make([]string, 0, len(subcommands))
	for c := range subcommands {
		names = append(names, c)
	}
	slices.Sort(names)

	for _, c := range names {
		fmt.Printf("subcommand <%s>: %s\n", c, subcommands[c].Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: salesdash <subcommand> [flags]\n\n")
}
