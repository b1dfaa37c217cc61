// Command odesk is a command line client for the oDesk API.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/odesk/odesk-go/internal/log/handlers/cli"
	"github.com/spf13/cobra"
)

// version is the version of this command.
const version = "0.1.0"

// Options contains the options you can set from the CLI.
type Options struct {
	BaseURL    string
	ConfigFile string
	LogBody    bool
	Params     []string
	Verbose    bool
}

func main() {
	defer func() {
		if s := recover(); s != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %s\n", s)
			os.Exit(1)
		}
	}()
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root command writing results to stdout
// and logs to stderr.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var globalOptions Options
	rootCmd := &cobra.Command{
		Use:           "odesk",
		Short:         "odesk is a command line client for the oDesk API",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetVersionTemplate("{{ .Version }}\n")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	flags := rootCmd.PersistentFlags()

	flags.StringVar(
		&globalOptions.BaseURL,
		"base-url",
		"",
		"override the API base URL from the config file",
	)

	flags.StringVarP(
		&globalOptions.ConfigFile,
		"config",
		"c",
		"",
		"path of the config file (default: \"$HOME/.odesk/config.json\")",
	)

	flags.BoolVar(
		&globalOptions.LogBody,
		"log-body",
		false,
		"log request and response bodies (requires --verbose)",
	)

	flags.BoolVarP(
		&globalOptions.Verbose,
		"verbose",
		"v",
		false,
		"increase verbosity level",
	)

	env := &environment{
		logger:  &log.Logger{Handler: cli.New(stderr), Level: log.InfoLevel},
		options: &globalOptions,
		stdout:  stdout,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if globalOptions.Verbose {
			env.logger.Level = log.DebugLevel
		}
	}
	registerTasks(rootCmd, env)
	registerSearch(rootCmd, env)
	return rootCmd
}
