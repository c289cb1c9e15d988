package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a2-coder/dvmm/internal/usecase"
)

func entitiesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the entities dvmm can map",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g, false)
			if err != nil {
				return err
			}
			defer ws.Close()

			for _, name := range usecase.NewListEntities(ws.catalog).Execute() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
