package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/infra/logger"
	"github.com/a2-coder/dvmm/internal/usecase"
)

func checkCmd(g *globalFlags) *cobra.Command {
	var entity string
	var file string
	var selector string
	var direction string
	var noSave bool
	var outFormat string
	var strict bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Verify that records survive a domain/view round trip unchanged",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := domain.ParseDirection(direction)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(g, strict)
			if err != nil {
				return err
			}
			defer ws.Close()

			path, err := resolveRecordPath(ws, file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("select") {
				selector = ws.cfg.Input.Selector
			}

			opts := []usecase.Option{usecase.WithLogger(logger.L())}
			if !noSave {
				opts = append(opts, usecase.WithReportStore(ws.store))
			}

			uc := usecase.NewCheckRoundTrip(ws.source, ws.catalog, opts...)
			report, id, err := uc.Execute(cmd.Context(), usecase.CheckRequest{
				Entity:    entity,
				Path:      path,
				Selector:  selector,
				Direction: dir,
			})
			if err != nil {
				if len(report.Checks) > 0 {
					_ = printReport(cmd.OutOrStdout(), report, id, outFormat)
				}
				return err
			}

			if err := printReport(cmd.OutOrStdout(), report, id, outFormat); err != nil {
				return err
			}

			if fails := report.Failures(); fails > 0 {
				return fmt.Errorf("round trip failed (%d of %d record(s))", fails, len(report.Checks))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&entity, "entity", "e", "", "Entity name (see `dvmm entities`)")
	c.Flags().StringVarP(&file, "file", "f", "", "Input file (.json|.yaml|.yml), fixture name, or - for stdin")
	c.Flags().StringVar(&selector, "select", "", "JSONPath selecting the records (e.g. $.data.items)")
	c.Flags().StringVar(&direction, "direction", string(domain.DirectionView), "First leg of the round trip: view (input is domain records) | domain (input is view records)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under the reports dir")
	c.Flags().StringVar(&outFormat, "format", "pretty", "Output format: pretty|json|yaml")
	c.Flags().BoolVar(&strict, "strict", false, "Reject input fields the record does not declare")

	_ = c.MarkFlagRequired("entity")
	_ = c.MarkFlagRequired("file")
	return c
}
