package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	box "github.com/Delta456/box-cli-maker/v2"
	flags "github.com/jessevdk/go-flags"

	"github.com/haliax/globc/internal/api"
	"github.com/haliax/globc/internal/config"
	"github.com/haliax/globc/pkg/minimatch"
)

type opts struct {
	Config     *string `short:"c" long:"config" description:"Specify custom path to globc config JSON"`
	NoCase     *bool   `short:"i" long:"nocase" description:"Case-insensitive matching"`
	Dot        *bool   `short:"d" long:"dot" description:"Allow patterns to match dotfiles"`
	NoExt      *bool   `short:"e" long:"no-ext" description:"Disable extglob syntax"`
	Listen     *string `short:"l" long:"listen" description:"Listen address for the serve subcommand" default:"127.0.0.1:8080"`
	Positional struct {
		Command string   `positional-arg-name:"command" description:"compile | match | serve"`
		Args    []string `positional-arg-name:"args"`
	} `positional-args:"yes" required:"yes"`
}

func loadConfig(path *string) config.Configuration {
	if path != nil {
		cfg, _ := config.Load(*path)
		return cfg
	}
	cfg, _ := config.Load("globc.json")
	return cfg
}

func resolveOptions(o opts, base minimatch.Options) minimatch.Options {
	if o.NoCase != nil {
		base.NoCase = *o.NoCase
	}
	if o.Dot != nil {
		base.Dot = *o.Dot
	}
	if o.NoExt != nil {
		base.NoExt = *o.NoExt
	}
	return base
}

func main() {
	var o opts

	if _, err := flags.Parse(&o); err != nil {
		if !flags.WroteHelp(err) {
			panic(err)
		}
		os.Exit(0)
	}

	cfg := loadConfig(o.Config)
	matchOpts := resolveOptions(o, cfg.Options)

	switch o.Positional.Command {
	case "compile":
		runCompile(cfg, matchOpts, o.Positional.Args)
	case "match":
		runMatch(cfg, matchOpts, o.Positional.Args)
	case "serve":
		runServe(*o.Listen)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q: expected compile, match, or serve\n", o.Positional.Command)
		os.Exit(1)
	}
}

func runCompile(cfg config.Configuration, matchOpts minimatch.Options, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: globc compile <pattern>")
		os.Exit(1)
	}

	pattern := cfg.Resolve(args[0])
	root, err := minimatch.Parse(pattern, matchOpts)
	if err != nil {
		panic(err)
	}

	pat, err := minimatch.ToPattern(root, matchOpts)
	if err != nil {
		panic(err)
	}

	lines := []string{fmt.Sprintf("- Glob:    %s", pat.Glob)}
	if pat.IsExact {
		lines = append(lines, "- Kind:    literal", fmt.Sprintf("- Literal: %s", pat.Literal))
	} else {
		lines = append(lines, "- Kind:    regex", fmt.Sprintf("- Source:  %s", pat.Src))
	}

	bx := box.New(box.Config{Px: 4, Py: 1})
	bx.Println("Compiled!", strings.Join(lines, "\n"))
}

func runMatch(cfg config.Configuration, matchOpts minimatch.Options, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: globc match <pattern> <path...>")
		os.Exit(1)
	}

	pattern := cfg.Resolve(args[0])
	matches := minimatch.Match(args[1:], pattern, matchOpts)
	for _, m := range matches {
		fmt.Println(m)
	}
}

func runServe(listen string) {
	router := api.NewRouter()

	bx := box.New(box.Config{Px: 4, Py: 1})
	bx.Println("Serving!", fmt.Sprintf("- Local: http://%s", listen))

	server := http.Server{
		Addr:    listen,
		Handler: router,
	}
	if err := server.ListenAndServe(); err != nil {
		panic(err)
	}
}
