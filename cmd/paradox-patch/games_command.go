package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paradoxpatch/internal/game"
)

func newGamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "games",
		Short:       "List supported games and their file locations",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(game.All))
			for _, p := range game.All {
				rows = append(rows, []string{p.FolderName(), p.String(), p.DLCOutputPath(), p.LibraryPath()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("",
				[]string{"Folder", "ID", "DLC list", "Library"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
