package main

import (
	"strings"

	"github.com/spf13/cobra"

	"crashlens/internal/core/searchquery"
)

var parseCmd = &cobra.Command{
	Use:   "parse <query>",
	Short: "Show how a free-text query splits into borough, year, and keywords",
	Args:  cobra.MinimumNArgs(1),
	// parsing needs no dataset, so skip the snapshot load
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		q := searchquery.Parse(strings.Join(args, " "))

		cmd.Printf("borough:  %s\n", q.Borough)
		if q.Year != nil {
			cmd.Printf("year:     %d\n", *q.Year)
		} else {
			cmd.Println("year:")
		}
		cmd.Printf("keywords: %s\n", strings.Join(q.Keywords, " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
