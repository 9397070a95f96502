package cli

import (
	"github.com/spf13/cobra"

	"github.com/rjdinis/winepath/pkg/utils"
)

func newDrivesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "drives",
		Aliases: []string{"ls"},
		Short:   "List the discovered drive mappings",
		Long: `List every drive letter mapped in the active prefix and the host
directory it points at, as read from the dosdevices directory.`,
		Example: `  winepath drives
  winepath --prefix /opt/prefixes/games drives`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrives()
		},
	}
	return cmd
}

func runDrives() error {
	ctx := getContext()
	log := ctx.Logger

	m := ctx.Translator.Drives()
	letters := m.Letters()
	if len(letters) == 0 {
		log.Warn("No drives mapped in %s", ctx.Translator.Prefix())
		return nil
	}

	widths := []int{5, 60}
	utils.PrintTableHeader(widths, []string{"Drive", "Host Root"})
	for _, letter := range letters {
		root, _ := m.Root(letter)
		utils.PrintTableRow(widths, utils.Green(letter.String()+":"), root)
	}
	utils.PrintTableFooter(widths)

	log.Info("%d drive(s) mapped", len(letters))
	return nil
}
