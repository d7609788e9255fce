package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/flowchat/internal/app"
	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/config"
	"github.com/matheus3301/flowchat/internal/locale"
	"github.com/matheus3301/flowchat/internal/logging"
	"github.com/matheus3301/flowchat/internal/nav"
	"github.com/matheus3301/flowchat/internal/prefs"
	"github.com/matheus3301/flowchat/internal/profile"
	"github.com/matheus3301/flowchat/internal/state"
	"github.com/matheus3301/flowchat/internal/store"
	"go.uber.org/zap"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Usage = printUsage
	flag.Parse()

	name := profile.Resolve(*profileFlag)
	if err := profile.ValidateName(name); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	c, closeFn, err := open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	c.json = *jsonFlag

	err = c.run(args)
	closeFn()
	if errors.Is(err, errUsage) {
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: flowctl [--profile <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  whoami                         Show the signed-in user")
	fmt.Fprintln(os.Stderr, "  login <email> <password>       Sign in with the local form")
	fmt.Fprintln(os.Stderr, "  login --name <n> <email> <pw>  Register and sign in")
	fmt.Fprintln(os.Stderr, "  login --token <jwt>            Sign in with an identity provider token")
	fmt.Fprintln(os.Stderr, "  logout                         Sign out")
	fmt.Fprintln(os.Stderr, "  theme [light|dark]             Show or set the theme")
	fmt.Fprintln(os.Stderr, "  chats [filter]                 List chats, optionally by participant name")
}

// open builds the application state of profile name over its store. The
// profile lock is not taken; the store tolerates a running terminal UI.
func open(name string) (*cli, func(), error) {
	cfg, err := config.LoadOrDefault(profile.ConfigPath())
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, nil, err
	}
	if err := profile.EnsureDir(name); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(logging.Options{
		Path:    profile.LogPath(name),
		Profile: name,
		Level:   cfg.LogLevel,
		Stderr:  true,
	})
	if err != nil {
		return nil, nil, err
	}
	logger = logger.Named("flowctl")

	db, _, err := store.OpenMigrated(profile.DBPath(name))
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	loc, err := locale.New(cfg.Locale)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	b := bus.New()
	st := state.New(prefs.New(db, logger), nav.NewMachine(b), b, logger, prefs.DetectTerminal, app.NewStoreFactory(loc, b))
	if err := st.Boot(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := db.Close(); err != nil {
			logger.Warn("error closing store", zap.Error(err))
		}
		_ = logger.Sync()
	}
	return &cli{state: st, out: os.Stdout}, closeFn, nil
}
