// Package cmd implements the uitext CLI commands.
//
// The root command dispatches to subcommands (render, event, version).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/uitext/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "uitext",
	Short: "uitext - selectable native text composition",
	Long: `uitext composes selectable text trees the way a host app would and
shows what the native text view receives: the merged style, the text
leaves, the menu and highlight props, and decoded native events.

Use "uitext <command> --help" for more information about a command.`,
	Usage: "uitext <command> [flags]",
}

var (
	commands    = make(map[string]*Command)
	subCommands []*Command
)

// Global flag values.
var (
	configPath string
	verbose    bool
)

// stdout is where commands write their results; stderr receives
// diagnostics and error reports.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subCommands = append(subCommands, cmd)
}

// Execute runs the CLI with the given arguments (without the program name).
func Execute(args []string) error {
	configPath = ""
	verbose = false

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --config
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		case "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				return fmt.Errorf("--config requires a file path")
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	if verbose {
		errors.SetHandler(errors.NewSlogHandler(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	} else {
		errors.SetHandler(&errors.LogHandler{Out: stderr})
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range subCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  --config FILE        Configuration file (default: ./uitext.yaml if present)")
	fmt.Fprintln(stdout, "  --verbose            Log bridge errors with log/slog")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  uitext render note.yaml --os ios --version 17.0")
	fmt.Fprintln(stdout, `  uitext event topMenuAction '{"target":7,"id":"copy","selectedText":"hi","rangeStart":0,"rangeEnd":2}'`)
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
