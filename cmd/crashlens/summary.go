package main

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	summaryFilter filterFlags
	summaryJSON   bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregate crash, person, injury, and fatality counts for the given criteria",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := newService().Summarize(cmd.Context(), summaryFilter.input(0))
		if err != nil {
			return err
		}

		if summaryJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"CRASHES", "PERSONS", "INJURIES", "FATALITIES"})
		table.Append([]string{
			strconv.FormatInt(out.Summary.Crashes, 10),
			strconv.FormatInt(out.Summary.Persons, 10),
			strconv.FormatInt(out.Summary.Injuries, 10),
			strconv.FormatInt(out.Summary.Fatalities, 10),
		})
		table.Render()

		cmd.Printf("%d matching rows (snapshot %s)\n", out.Matched, out.SnapshotID)
		return nil
	},
}

func init() {
	summaryFilter.register(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "emit the raw result as JSON")
	rootCmd.AddCommand(summaryCmd)
}
