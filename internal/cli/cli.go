// Package cli implements the command-line interface for winepath.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjdinis/winepath/internal/config"
	"github.com/rjdinis/winepath/internal/logging"
	"github.com/rjdinis/winepath/internal/translate"
)

type AppContext struct {
	Config     *config.Config
	Logger     *logging.Logger
	Translator *translate.Translator
}

var (
	appCtx     *AppContext
	quiet      bool
	debug      bool
	prefixFlag string
)

func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "winepath",
		Short: "Convert between Wine and host file paths",
		Long: `winepath converts file paths between the Windows-style form seen by
software running under Wine (C:\Users\me\file.txt) and the host form on the
underlying filesystem (/home/me/.wine/drive_c/users/me/file.txt).

It reads the prefix's dosdevices mappings directly instead of spawning the
winepath tool that ships with Wine, so no Wine process is started.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			var err error
			appCtx, err = initContext()
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Run in quiet mode")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Run in debug mode")
	rootCmd.PersistentFlags().StringVarP(&prefixFlag, "prefix", "p", "", "Wine prefix to use (default: $WINEPREFIX or ~/.wine)")

	rootCmd.AddCommand(
		newVersionCmd(version, commit, date),
		newCompletionCmd(),
		newUnixCmd(),
		newWindowsCmd(),
		newDrivesCmd(),
		newPrefixCmd(),
	)

	return rootCmd
}

func initContext() (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.SetQuiet(quiet)
	cfg.SetDebug(debug)
	cfg.SetPrefix(prefixFlag)

	logger := logging.New(cfg.Quiet, cfg.Debug)
	logger.Debug("Using prefix %s (from %s)", cfg.Prefix, cfg.PrefixSource)

	translator, err := translate.New(cfg.Prefix)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered %d drive mapping(s)", translator.Drives().Len())

	return &AppContext{
		Config:     cfg,
		Logger:     logger,
		Translator: translator,
	}, nil
}

func getContext() *AppContext { return appCtx }

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("winepath version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
