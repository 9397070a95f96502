package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjdinis/winepath/pkg/utils"
)

func newPrefixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefix",
		Short: "Show the active wine prefix",
		Long: `Show which prefix translations run against, where it was picked up
from (the --prefix flag, the WINEPREFIX variable, or the ~/.wine default),
and how many drives it maps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefix()
		},
	}
}

func runPrefix() error {
	ctx := getContext()

	if ctx.Config.Quiet {
		fmt.Println(ctx.Translator.Prefix())
		return nil
	}

	pairs := [][2]string{
		{"Path", ctx.Translator.Prefix()},
		{"Source", ctx.Config.PrefixSource},
		{"Drives", fmt.Sprintf("%d", ctx.Translator.Drives().Len())},
	}
	utils.KeyValueTable("Wine Prefix", pairs, 8, 70)
	return nil
}
