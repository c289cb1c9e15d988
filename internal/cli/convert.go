package cli

import (
	"github.com/spf13/cobra"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/infra/logger"
	"github.com/a2-coder/dvmm/internal/usecase"
)

const (
	directionView   = domain.DirectionView
	directionDomain = domain.DirectionDomain
)

// convertCmd builds `dvmm view` and `dvmm domain`; the command name is the
// record shape it produces.
func convertCmd(g *globalFlags, dir domain.Direction) *cobra.Command {
	var entity string
	var file string
	var selector string
	var outFormat string
	var strict bool

	short := "Convert domain records into view records"
	if dir == domain.DirectionDomain {
		short = "Convert view records back into domain records"
	}

	c := &cobra.Command{
		Use:   string(dir),
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			if !cmd.Flags().Changed("format") {
				outFormat = ws.cfg.Output.Format
			}

			uc := usecase.NewConvertRecords(ws.source, ws.catalog, usecase.WithLogger(logger.L()))
			res, err := uc.Execute(cmd.Context(), usecase.ConvertRequest{
				Entity:    entity,
				Path:      path,
				Selector:  selector,
				Direction: dir,
			})
			if err != nil {
				return err
			}

			return printRecords(cmd.OutOrStdout(), res.Records, outFormat)
		},
	}

	c.Flags().StringVarP(&entity, "entity", "e", "", "Entity name (see `dvmm entities`)")
	c.Flags().StringVarP(&file, "file", "f", "", "Input file (.json|.yaml|.yml), fixture name, or - for stdin")
	c.Flags().StringVar(&selector, "select", "", "JSONPath selecting the "+dir.Input()+" records (e.g. $.data.items)")
	c.Flags().StringVar(&outFormat, "format", "json", "Output format: json|yaml|dump")
	c.Flags().BoolVar(&strict, "strict", false, "Reject input fields the record does not declare")

	_ = c.MarkFlagRequired("entity")
	_ = c.MarkFlagRequired("file")
	return c
}
