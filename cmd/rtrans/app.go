package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/realtransducer/store"
	"github.com/katalvlaran/realtransducer/transducer"
)

// app carries what every command shares. Fields set before Execute are
// kept: tests inject writers and an in-memory store.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFile    string
	dbPath     string
	inMemory   bool

	cfg       Config
	logger    *slog.Logger
	logCloser io.Closer
	store     *store.Store
	ownsStore bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "rtrans",
		Short: "Enumerate, store and inspect real transducers",
		Long: `rtrans works with real transducers: finite machines reading the binary
expansion of a point of the circle and writing another one.

Machines are enumerated exhaustively by size, validated, and stored by id in
a local database. Stored machines can be evaluated, compared and classified
by their behavior on all inputs of a given length.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.logFile, "log-file", "", "also write JSON logs to this file")
	f.StringVar(&a.dbPath, "db", "", "example database directory")
	f.BoolVar(&a.inMemory, "in-memory", false, "use a throwaway in-memory database")

	root.AddCommand(
		newGenerateCmd(a),
		newEvalCmd(a),
		newBehaviorCmd(a),
		newClassifyCmd(a),
		newMinimalCmd(a),
		newBisimCmd(a),
		newShowCmd(a),
		newCatalogCmd(a),
	)

	return root
}

// setup loads the config, overlays explicit flags, validates, and opens
// the logger and the store.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if flags.Changed("db") {
		cfg.Store.Path = a.dbPath
	}
	if flags.Changed("in-memory") {
		cfg.Store.InMemory = a.inMemory
	}
	if err = cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, a.logCloser, err = newLogger(cfg.Log, a.stderr)
	if err != nil {
		return err
	}

	if a.store == nil {
		sc := store.DefaultConfig()
		sc.Path = cfg.Store.Path
		sc.InMemory = cfg.Store.InMemory
		sc.Logger = a.logger.With("component", "badger")
		if a.store, err = store.Open(sc); err != nil {
			return err
		}
		a.ownsStore = true
	}
	a.logger.Debug("rtrans: ready", "command", cmd.Name(), "db", cfg.Store.Path, "in_memory", cfg.Store.InMemory)

	return nil
}

func (a *app) teardown() error {
	var errs []error
	if a.ownsStore && a.store != nil {
		errs = append(errs, a.store.Close())
		a.store, a.ownsStore = nil, false
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
		a.logCloser = nil
	}

	return errors.Join(errs...)
}

// machine loads and validates the stored machine with the given id argument.
func (a *app) machine(cmd *cobra.Command, arg string) (*transducer.Automaton, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("machine id %q: %w", arg, err)
	}
	rec, err := a.store.Get(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	m, err := transducer.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("machine %d: %w", id, err)
	}

	return m, nil
}
