package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/ingest"
)

var ReportCmd = &cobra.Command{
	Use:   ReportCmdName,
	Short: ReportCmdShort,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()

		if err := ingest.WriteDiagnostics(cmd.ErrOrStderr(), a.diags); err != nil {
			return err
		}
		return ingest.WriteReport(cmd.OutOrStdout(), a.catalog)
	},
}
