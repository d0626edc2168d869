package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/ghexplorer/internal/application"
	"github.com/inovacc/ghexplorer/internal/config"
	"github.com/inovacc/ghexplorer/internal/core"
	"github.com/inovacc/ghexplorer/internal/github"
	"github.com/inovacc/ghexplorer/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// annotationTUI marks commands that take over the terminal; their logs go to
// a file in the data directory.
const annotationTUI = "tui"

const logFileName = "ghexplorer.log"

var (
	cfgFile string
	app     *appContext
)

type appContext struct {
	cfg     *config.Config
	log     *slog.Logger
	dataDir string
	logFile *os.File
	store   store.Store
}

func setup(cmd *cobra.Command) error {
	cfg := config.New()

	// Only flags set on the command line override env and file values.
	if err := cfg.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := cfg.Load(cfgFile); err != nil {
		return err
	}

	dataDir, err := cfg.GetDataDir()
	if err != nil {
		return err
	}

	if err := application.EnsureDirectory(dataDir); err != nil {
		return err
	}

	a := &appContext{cfg: cfg, dataDir: dataDir}

	var w io.Writer = cmd.ErrOrStderr()

	if cmd.Annotations[annotationTUI] == "true" && isTerminal() {
		f, err := os.OpenFile(filepath.Join(dataDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		a.logFile = f
		w = f
	}

	a.log = config.SetupLog(cfg, w)
	cfg.Watch()

	app = a

	return nil
}

func closeApp() {
	if app == nil {
		return
	}

	if app.store != nil {
		if err := app.store.Close(); err != nil {
			app.log.Warn("Failed to close storage", "error", err)
		}
	}

	if app.logFile != nil {
		_ = app.logFile.Close()
	}

	app = nil
}

// openCollection opens storage and the lookup client and loads the saved
// list.
func (a *appContext) openCollection() (*core.Collection, *github.Client, error) {
	st, err := store.Open(a.cfg.GetStorage(), a.dataDir)
	if err != nil {
		return nil, nil, err
	}

	a.store = st

	client, err := github.NewClient(
		github.WithBaseURL(a.cfg.GetAPIURL()),
		github.WithToken(a.cfg.GetToken()),
		github.WithLogger(a.log),
	)
	if err != nil {
		return nil, nil, err
	}

	coll := core.NewCollection(st, client,
		core.WithDuplicatePolicy(a.cfg.GetDuplicatePolicy()),
		core.WithPersistMode(a.cfg.GetPersistMode()),
		core.WithLogger(a.log),
	)
	coll.Initialize()

	return coll, client, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
