package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/tfscaffold/internal/clock"
	"github.com/danieljhkim/tfscaffold/internal/config"
	"github.com/danieljhkim/tfscaffold/internal/engine"
	"github.com/danieljhkim/tfscaffold/internal/fsops"
	"github.com/danieljhkim/tfscaffold/internal/gitx"
	"github.com/danieljhkim/tfscaffold/internal/planner"
	"github.com/danieljhkim/tfscaffold/internal/state"
)

// newEngine creates a new engine with real implementations of all dependencies.
// override, when set, adjusts the loaded settings before the planner is built.
func (o *globalOptions) newEngine(cmd *cobra.Command, override func(*config.Settings)) (*engine.Engine, *config.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	paths, err := config.DefaultPaths(cwd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if o.configFile != "" {
		withSettings, err := paths.WithSettingsFile(o.configFile)
		if err != nil {
			return nil, nil, err
		}
		if _, err := os.Stat(withSettings.SettingsFile); err != nil {
			return nil, nil, fmt.Errorf("settings file: %w", err)
		}
		paths = &withSettings
	}

	settings, err := config.LoadSettings(paths.SettingsFile)
	if err != nil {
		return nil, nil, err
	}
	if override != nil {
		override(settings)
	}

	logger := newLogger(cmd.ErrOrStderr(), o.verbose, o.noColor)
	logger.WithFields(logrus.Fields{
		"cwd":      cwd,
		"stateDir": paths.StateDir,
		"settings": paths.SettingsFile,
	}).Debug("resolved paths")

	fs := fsops.NewRealFS()
	p, err := planner.New(fs, planner.Options{
		Root:           cwd,
		ModulesDir:     settings.ModulesDir,
		ModuleFiles:    settings.ModuleFiles,
		Placeholder:    settings.Placeholder,
		Exclude:        settings.Exclude,
		FollowSymlinks: settings.FollowSymlinks,
	})
	if err != nil {
		return nil, nil, err
	}

	clk := clock.NewRealClock()
	tracker := state.NewFileTracker(fs, paths.TrackingFile, logger)
	history := state.NewFileHistory(fs, paths.HistoryFile, clk)
	stager := gitx.NewStager(gitx.NewRealGitRepo(), cwd)

	return engine.New(fs, p, tracker, history, stager, clk, logger, cwd), settings, nil
}

// newLogger creates the stderr logger. Verbosity raises the level from warn.
func newLogger(w io.Writer, verbosity int, noColor bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logLevel(verbosity))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    noColor || !isTerminal(w),
		DisableTimestamp: true,
	})
	return logger
}

func logLevel(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.WarnLevel
	case verbosity == 1:
		return logrus.InfoLevel
	case verbosity == 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderScaffold prints the outcome of a module, live or fill run.
func (o *globalOptions) renderScaffold(w io.Writer, rows []engine.Row, created []string, placeholder string, gitAdd bool, result interface{}) error {
	if o.jsonOutput {
		return outputJSON(w, result)
	}

	if len(rows) == 0 {
		printEmptyState(w, "Nothing to scaffold")
		return nil
	}

	if err := renderRows(w, rows, placeholder, gitAdd); err != nil {
		return err
	}

	if gitAdd {
		for _, row := range rows {
			if row.Staged != nil && !*row.Staged {
				printWarning(w, "Some files could not be added to git")
				break
			}
		}
	}

	if len(created) == 0 {
		printInfo(w, "Nothing new was created")
		return nil
	}
	printSuccess(w, fmt.Sprintf("Created %s (undo with \"tfscaffold revert\")", printCount(len(created), "path", "paths")))
	return nil
}
