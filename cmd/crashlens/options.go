package main

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options <column>",
	Short: "List the distinct values of a column, for building filter criteria",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newService().Options(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{out.Column})
		for _, v := range out.Values {
			table.Append([]string{v})
		}
		table.Render()
		return nil
	},
}

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the canonical columns present in the loaded snapshot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := newService().Columns(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range out.Columns {
			cmd.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(columnsCmd)
}
