package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjdinis/winepath/internal/types"
	"github.com/rjdinis/winepath/internal/validation"
)

func newUnixCmd() *cobra.Command {
	var print0 bool
	cmd := &cobra.Command{
		Use:     "unix <path>...",
		Aliases: []string{"u"},
		Short:   "Convert Windows-style guest paths to host paths",
		Long: `Convert one or more Windows-style paths to their host form.

Drive-rooted (C:\...) and UNC (\\server\share\...) paths are accepted, with
either separator style. Segments are matched case-insensitively against the
files that exist; a trailing part that does not exist yet is kept verbatim,
so paths of files about to be created still convert.`,
		Example: `  winepath unix 'C:\Program Files\CoolApp\start.exe'
  winepath unix 'c:/users/me/report.txt' 'd:\data'
  WINEPREFIX=/opt/prefixes/games winepath unix 'C:\game.exe'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnix(args, print0)
		},
	}
	cmd.Flags().BoolVarP(&print0, "print0", "0", false, "Separate results with NUL instead of newline")
	return cmd
}

func runUnix(args []string, print0 bool) error {
	ctx := getContext()
	log := ctx.Logger

	for _, raw := range args {
		if err := validation.ValidateGuestPath(raw); err != nil {
			return &types.TranslateError{Op: "unix", Path: validation.SanitizeString(raw), Err: err}
		}

		host, err := ctx.Translator.GuestToHost(raw)
		if err != nil {
			return err
		}
		log.Debug("%s => %s", raw, host)

		if print0 {
			fmt.Print(host, "\x00")
		} else {
			fmt.Println(host)
		}
	}
	return nil
}
