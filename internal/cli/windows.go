package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rjdinis/winepath/internal/types"
	"github.com/rjdinis/winepath/internal/validation"
)

func newWindowsCmd() *cobra.Command {
	var (
		print0   bool
		absolute bool
	)
	cmd := &cobra.Command{
		Use:     "windows <path>...",
		Aliases: []string{"w", "win"},
		Short:   "Convert host paths to Windows-style guest paths",
		Long: `Convert one or more host paths to the Windows-style form.

Each path is matched against the discovered drive mappings; the mapping
whose root shares the most leading segments wins. Casing is taken from the
input unchanged: the host filesystem is the source of truth.`,
		Example: `  winepath windows /home/me/.wine/drive_c/windows/system32
  winepath windows --absolute ./saves/slot1.dat`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindows(args, print0, absolute)
		},
	}
	cmd.Flags().BoolVarP(&print0, "print0", "0", false, "Separate results with NUL instead of newline")
	cmd.Flags().BoolVarP(&absolute, "absolute", "a", false, "Make relative host paths absolute before converting")
	return cmd
}

func runWindows(args []string, print0, absolute bool) error {
	ctx := getContext()
	log := ctx.Logger

	for _, raw := range args {
		if err := validation.ValidateHostPath(raw); err != nil {
			return &types.TranslateError{Op: "windows", Path: validation.SanitizeString(raw), Err: err}
		}

		path := raw
		if absolute {
			abs, err := filepath.Abs(raw)
			if err != nil {
				return &types.TranslateError{Op: "windows", Path: raw, Err: err}
			}
			path = abs
		}

		guest, err := ctx.Translator.HostToGuest(path)
		if err != nil {
			return err
		}
		log.Debug("%s => %s", path, guest)

		if print0 {
			fmt.Print(guest, "\x00")
		} else {
			fmt.Println(guest)
		}
	}
	return nil
}
