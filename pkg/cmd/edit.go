package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/prompt"
)

var (
	RepriceCmd = &cobra.Command{
		Use:   RepriceCmdName,
		Short: RepriceCmdShort,
		Long:  RepriceCmdLong,
		Args:  cobra.NoArgs,
		RunE:  repriceCmdFunc,
	}

	RepairCmd = &cobra.Command{
		Use:   RepairCmdName,
		Short: RepairCmdShort,
		Args:  cobra.NoArgs,
		RunE:  repairCmdFunc,
	}
)

func init() {
	RepriceCmd.Flags().Int("row", 0, "0-based index of the car in the catalog")
	RepriceCmd.Flags().Float64("amount", 0, "new price, or a discount when zero or negative")
	RepriceCmd.MarkFlagRequired("amount")

	RepairCmd.Flags().Int("row", 0, "0-based index of the car in the catalog")
	RepairCmd.Flags().String("part", "", fmt.Sprintf("part to replace %v", dal.PartNames()))
	RepairCmd.Flags().String("with", "", "replacement part description")
	RepairCmd.MarkFlagRequired("part")
	RepairCmd.MarkFlagRequired("with")
}

func repriceCmdFunc(cmd *cobra.Command, args []string) error {
	row, _ := cmd.Flags().GetInt("row")
	amount, _ := cmd.Flags().GetFloat64("amount")

	a, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.log.Sync()

	car, err := a.car(row)
	if err != nil {
		return err
	}
	before := car.Price
	console := prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	if err := car.ModifyPrice(cmd.Context(), amount, console); err != nil {
		return err
	}

	a.log.Info("price modified", "car", car.String(), "from", before, "to", car.Price)
	fmt.Fprintf(cmd.OutOrStdout(), "%s now priced at %.2f\n", car, car.Price)
	return nil
}

func repairCmdFunc(cmd *cobra.Command, args []string) error {
	row, _ := cmd.Flags().GetInt("row")
	part, _ := cmd.Flags().GetString("part")
	with, _ := cmd.Flags().GetString("with")

	a, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.log.Sync()

	car, err := a.car(row)
	if err != nil {
		return err
	}
	if err := car.Repair(part, with); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s replaced with %s\n", car, part, with)
	return nil
}
