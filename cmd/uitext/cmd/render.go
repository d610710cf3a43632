package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/uitext/cmd/uitext/internal/tree"
	"github.com/go-drift/uitext/pkg/config"
	"github.com/go-drift/uitext/pkg/errors"
	"github.com/go-drift/uitext/pkg/text"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Compose a text tree and print the result",
		Long: `Compose a text tree described in YAML and print the resulting render tree.

The platform comes from the tree file's platform section unless overridden
with --os and --version. Platform availability and prop defaults come from
the configuration file.

The visible text of a native view is printed last; highlight ranges and
menu-action offsets index into it. With --json, the wire props of every
native view are printed instead.`,
		Usage: "uitext render <tree.yaml> [--os name] [--version x.y] [--json]",
		Run:   runRender,
	})
}

type renderOptions struct {
	path    string
	os      string
	version string
	json    bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--json":
			opts.json = true
		case arg == "--os" || arg == "--version":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			if arg == "--os" {
				opts.os = args[i+1]
			} else {
				opts.version = args[i+1]
			}
			i++
		case strings.HasPrefix(arg, "--os="):
			opts.os = strings.TrimPrefix(arg, "--os=")
		case strings.HasPrefix(arg, "--version="):
			opts.version = strings.TrimPrefix(arg, "--version=")
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %q", arg)
		default:
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.path = arg
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("render requires a tree file")
	}
	return opts, nil
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(".")
	}
	if err != nil {
		errors.Report(&errors.BridgeError{Op: "config.Load", Kind: errors.KindConfig, Err: err})
		return nil, err
	}
	return cfg, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := tree.ReadFile(opts.path)
	if err != nil {
		return err
	}
	p := doc.Platform
	if opts.os != "" {
		p.OS = opts.os
	}
	if opts.version != "" {
		p.Version = opts.version
	}

	gate, err := cfg.NewGate(p)
	if err != nil {
		return err
	}
	root := gate.Render(doc.Root)

	if opts.json {
		return printWireProps(root)
	}
	fmt.Fprintf(stdout, "platform %s\n", p)
	if err := tree.NewPrinter(stdout).Print(root); err != nil {
		return err
	}
	if _, native := root.(text.NativeTextView); native {
		fmt.Fprintf(stdout, "text %q\n", text.VisibleText(root))
	}
	return nil
}

func printWireProps(root text.Element) error {
	var err error
	text.Walk(root, func(el text.Element) bool {
		view, ok := el.(text.NativeTextView)
		if !ok || err != nil {
			return err == nil
		}
		var data []byte
		data, err = view.Props.Encode()
		if err == nil {
			fmt.Fprintln(stdout, string(data))
		}
		return false
	})
	return err
}
