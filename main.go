package main

import (
	"fmt"
	"os"

	"dirjump/internal/complete"
	"dirjump/internal/config"
	"dirjump/internal/shellenv"
	"dirjump/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

// Version is stamped at release time via -ldflags.
var Version = "0.2.0"

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "dirjump-dev",
		Repository: "dirjump",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/dirjump-dev/dirjump/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dirjump [options] <command> [args]\n\n")
		fmt.Fprintf(os.Stderr, "dirjump remembers the directories you visit and jumps back to them\n")
		fmt.Fprintf(os.Stderr, "from a partial or fuzzy name, most recent first.\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  complete <query>   Resolve a query to the best known directory\n")
		fmt.Fprintf(os.Stderr, "  forget [path]      Drop a path (default: current dir) from the history\n")
		fmt.Fprintf(os.Stderr, "  pick [query]       Browse the history interactively\n")
		fmt.Fprintf(os.Stderr, "  init [shell]       Print the shell integration snippet (zsh, bash)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dirjump complete proj        # Best match for \"proj\"\n")
		fmt.Fprintf(os.Stderr, "  dirjump complete -l 5 proj   # Top 5 matches, no history update\n")
		fmt.Fprintf(os.Stderr, "  eval \"$(dirjump init zsh)\"   # Install the dj wrapper in zsh\n")
	}

	dbFlag := pflag.String("db", "", "History db file (default: user config dir)")
	configFlag := pflag.String("config", "", "Config file (default: user config dir)")
	confidenceFlag := pflag.Float64P("confidence", "c", config.DefaultMinConfidence, "Minimum match confidence")
	listFlag := pflag.IntP("list", "l", 0, "List up to N matches instead of consuming the best one")
	cmdFlag := pflag.String("cmd", "dj", "Name of the shell wrapper function (with init)")
	debugFlag := pflag.BoolP("debug", "d", false, "Print confidences and timing to stderr")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("dirjump version %s\n", Version)
		return
	}

	if *updateFlag {
		checkUpdate(Version)
		return
	}

	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}

	minConfidence := cfg.MinConfidence
	if pflag.Lookup("confidence").Changed {
		minConfidence = *confidenceFlag
	}

	completer := complete.New(dbPath)
	completer.Debug = *debugFlag

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	switch args[0] {
	case "complete":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Error: complete needs a query\n")
			os.Exit(2)
		}
		runComplete(completer, args[1], minConfidence, *listFlag, *debugFlag)

	case "forget":
		target := ""
		if len(args) > 1 {
			target = args[1]
		}
		if err := completer.Forget(target); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "pick":
		query := ""
		if len(args) > 1 {
			query = args[1]
		}
		runPick(completer, query, minConfidence)

	case "init":
		shellName := os.Getenv("SHELL")
		if len(args) > 1 {
			shellName = args[1]
		}
		fmt.Print(shellenv.Detect(shellName).InitScript(*cmdFlag))

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", args[0])
		pflag.Usage()
		os.Exit(2)
	}
}

func runComplete(c *complete.Completer, query string, minConfidence float64, listN int, debug bool) {
	results, err := c.Complete(query, minConfidence, listN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A distinct status for "no match" lets the shell wrapper bail out
	// instead of cd-ing to an empty string.
	if len(results) == 0 {
		os.Exit(1)
	}

	for _, r := range results {
		if debug {
			fmt.Printf("[%.2f] %s\n", r.Confidence, r.Path)
		} else {
			fmt.Println(r.Path)
		}
	}
}

func runPick(c *complete.Completer, query string, minConfidence float64) {
	paths, err := c.Known()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := tui.New(paths, query, minConfidence)
	// The picker draws on stderr so the chosen path is the only thing on
	// stdout, which keeps $(dirjump pick) usable in the shell wrapper.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	choice := final.(tui.Model).Choice
	if choice == "" {
		os.Exit(1)
	}
	if err := c.Promote(choice); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(choice)
}
