package main

import (
	"encoding/json"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	queryFilter filterFlags
	queryLimit  int
	queryOffset int
	queryJSON   bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "List person-rows matching the given criteria",
	RunE: func(cmd *cobra.Command, _ []string) error {
		in := queryFilter.input(queryLimit)
		in.Offset = queryOffset
		out, err := newService().Query(cmd.Context(), in)
		if err != nil {
			return err
		}

		if queryJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"COLLISION", "BOROUGH", "YEAR", "MONTH", "HOUR",
			"PERSON TYPE", "INJURY", "VEHICLE", "FACTOR",
		})
		for _, row := range out.Rows {
			table.Append([]string{
				row.CollisionID,
				row.Borough,
				fmtIntPtr(row.Year),
				fmtIntPtr(row.Month),
				fmtIntPtr(row.Hour),
				row.PersonType,
				row.PersonInjury,
				row.VehicleType,
				row.Factor,
			})
		}
		table.Render()

		cmd.Printf("%d of %d matching rows (snapshot %s)\n", out.Returned, out.Matched, out.SnapshotID)
		return nil
	},
}

func init() {
	queryFilter.register(queryCmd)
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "max rows to print, 0 means the service default")
	queryCmd.Flags().IntVar(&queryOffset, "offset", 0, "rows to skip before printing")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "emit the raw result as JSON")
	rootCmd.AddCommand(queryCmd)
}
