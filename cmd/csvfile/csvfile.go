// Package csvfile handles generic CSV export processing commands.
package csvfile

import (
	"github.com/spf13/cobra"

	"github.com/Hemanth4041/statement-loader/cmd/root"
	"github.com/Hemanth4041/statement-loader/internal/csvparser"
)

// Cmd represents the csvfile command.
var Cmd = &cobra.Command{
	Use:   "csvfile",
	Short: "Process CSV bank exports",
	Long:  `Process generic CSV bank exports to convert to normalized transaction CSV files.`,
	Run:   csvFunc,
}

func csvFunc(cmd *cobra.Command, args []string) {
	input := root.RequireInput()
	root.Log.Infof("Input CSV file: %s", input)
	root.Log.Infof("Output directory: %s", root.OutputDir())

	if root.SharedFlags.Validate {
		valid, err := csvparser.ValidateFormat(input)
		if err != nil {
			root.Log.Fatalf("Error validating file format: %v", err)
		}
		if !valid {
			root.Log.Fatalf("File is not a recognized CSV export: %s", input)
		}
	}

	if err := csvparser.ConvertToCSV(input, root.OutputDir(), root.Identity()); err != nil {
		root.Log.Fatalf("Error converting CSV file: %v", err)
	}
	root.Log.Info("CSV conversion completed successfully!")
}
