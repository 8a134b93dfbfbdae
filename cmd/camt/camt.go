// Package camt handles CAMT.053 file processing commands.
package camt

import (
	"github.com/spf13/cobra"

	"github.com/Hemanth4041/statement-loader/cmd/root"
	"github.com/Hemanth4041/statement-loader/internal/camtparser"
)

// Cmd represents the camt command.
var Cmd = &cobra.Command{
	Use:   "camt",
	Short: "Process CAMT.053 files",
	Long:  `Process CAMT.053 XML statements to convert to normalized transaction CSV files.`,
	Run:   camtFunc,
}

func camtFunc(cmd *cobra.Command, args []string) {
	input := root.RequireInput()
	root.Log.Infof("Input CAMT.053 file: %s", input)
	root.Log.Infof("Output directory: %s", root.OutputDir())

	if root.SharedFlags.Validate {
		valid, err := camtparser.ValidateFormat(input)
		if err != nil {
			root.Log.Fatalf("Error validating file format: %v", err)
		}
		if !valid {
			root.Log.Fatalf("File is not a CAMT.053 statement: %s", input)
		}
	}

	if err := camtparser.ConvertToCSV(input, root.OutputDir(), root.Identity()); err != nil {
		root.Log.Fatalf("Error converting CAMT.053 file: %v", err)
	}
	root.Log.Info("CAMT.053 to CSV conversion completed successfully!")
}
