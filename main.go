package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/config"
	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/lexer"
	"github.com/pontaoski/tawac/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawac", "main")

// optionFlags returns fresh flags on every call; a flag keeps its parsed
// value between runs.
func optionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "target", Aliases: []string{"o"}, Usage: "output path handed to the backend"},
		&cli.BoolFlag{Name: "test", Usage: "build in test mode"},
		&cli.BoolFlag{Name: "debug-info", Aliases: []string{"g"}, Usage: "emit debug information"},
		&cli.IntFlag{Name: "opt-level", Aliases: []string{"O"}, Usage: "optimization level `0-3`"},
		&cli.StringSliceFlag{Name: "flag", Aliases: []string{"f"}, Usage: "free-form backend flag, repeatable"},
	}
}

// resolveOptions reads the project file in dir, if there is one, and lays
// the command line flags over its options.
func resolveOptions(c *cli.Context, dir string) (config.Options, error) {
	var opts config.Options
	project, err := config.Load(dir)
	switch {
	case err == nil:
		opts = project.Options
	case err == config.ErrNoProject:
		plog.Debugf("%s: %v, using defaults", dir, err)
	default:
		return opts, err
	}

	if c.IsSet("target") {
		opts.Target = c.String("target")
	}
	if c.IsSet("test") {
		opts.TestMode = c.Bool("test")
	}
	if c.IsSet("debug-info") {
		opts.DebugInfo = c.Bool("debug-info")
	}
	if c.IsSet("opt-level") {
		opts.OptLevel = c.Int("opt-level")
	}
	if c.IsSet("flag") {
		opts.Flags = append(opts.Flags, c.StringSlice("flag")...)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	plog.Debugf("options: %+v", opts)
	return opts, nil
}

// validateOptions is resolveOptions for commands that stop before the
// backend and only need the options to be well formed.
func validateOptions(c *cli.Context, dir string) error {
	_, err := resolveOptions(c, dir)
	return err
}

// unit is what the front end hands to the backend for one file.
type unit struct {
	Options config.Options
	File    *ast.File
}

func setupLogging(c *cli.Context) error {
	level, err := capnslog.ParseLevel(strings.ToUpper(c.String("log-level")))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, level >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(level)
	return nil
}

// report prints err for the user. Parser bugs get their stack trace.
func report(err error) {
	if errors.IsInternal(err) {
		tracerr.PrintSourceColor(err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func fileArg(c *cli.Context) (string, error) {
	file := c.Args().First()
	if file == "" {
		return "", cli.Exit("no file provided", 2)
	}
	return file, nil
}

func main() {
	app := &cli.App{
		Name:  "tawac",
		Usage: "tawa compiler front end",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "NOTICE", Usage: "CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG or TRACE"},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "create a project file in the current directory",
				ArgsUsage: "<package>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "toml", Usage: "write tawa.toml instead of tawa.yaml"},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no package name provided", 2)
					}
					project := &config.Project{
						Package:  name,
						Language: "^" + config.LanguageVersion,
					}
					path, err := config.Write(".", project, c.Bool("toml"))
					if err != nil {
						return cli.Exit(fmt.Sprintf("error creating project file: %v", err), 1)
					}
					plog.Infof("wrote %s", path)
					return nil
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the lexemes of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "trivia", Usage: "include whitespace and comments"},
				},
				Action: func(c *cli.Context) error {
					file, err := fileArg(c)
					if err != nil {
						return err
					}
					handle, err := os.Open(file)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					defer handle.Close()

					l := lexer.NewLexer(handle, file)
					l.KeepTrivia = c.Bool("trivia")
					for {
						tok, err := l.Lex()
						if err != nil {
							report(err)
							return cli.Exit("", 1)
						}
						fmt.Printf("%s\t%s\t%s\n", tok.Location, tok.Kind, tok)
						if tok.Kind == types.EOF {
							return nil
						}
					}
				},
			},
			{
				Name:      "parse",
				Usage:     "parse a file and print its tree",
				ArgsUsage: "FILE",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{Name: "dump", Usage: "print the resolved options and the full node structure instead of source form"},
				}, optionFlags()...),
				Action: func(c *cli.Context) error {
					file, err := fileArg(c)
					if err != nil {
						return err
					}
					opts, err := resolveOptions(c, ".")
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					tree, err := parsePath(file)
					if err != nil {
						report(err)
						return cli.Exit("", 1)
					}
					if c.Bool("dump") {
						repr.Println(unit{Options: opts, File: tree}, repr.Indent("  "), repr.OmitEmpty(true))
						return nil
					}
					fmt.Println(tree)
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "parse every source file of a directory",
				ArgsUsage: "[DIR]",
				Flags:     optionFlags(),
				Action: func(c *cli.Context) error {
					dir := c.Args().First()
					if dir == "" {
						dir = "."
					}
					if err := validateOptions(c, dir); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					failed, err := checkDir(c.Context, dir)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					if failed > 0 {
						return cli.Exit(fmt.Sprintf("%d file(s) failed to parse", failed), 1)
					}
					return nil
				},
			},
			{
				Name:      "watch",
				Usage:     "check a directory again whenever its source files change",
				ArgsUsage: "[DIR]",
				Flags: append([]cli.Flag{
					&cli.DurationFlag{Name: "debounce", Value: defaultDebounce, Usage: "quiet period before checking"},
				}, optionFlags()...),
				Action: func(c *cli.Context) error {
					dir := c.Args().First()
					if dir == "" {
						dir = "."
					}
					if err := validateOptions(c, dir); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return watchDir(c.Context, dir, c.Duration("debounce"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}
