// Package bai handles BAI2 file processing commands.
package bai

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hemanth4041/statement-loader/cmd/root"
	"github.com/Hemanth4041/statement-loader/internal/bai2"
	"github.com/Hemanth4041/statement-loader/internal/baiparser"
	"github.com/Hemanth4041/statement-loader/internal/fileutils"
)

// Cmd represents the bai command.
var Cmd = &cobra.Command{
	Use:   "bai",
	Short: "Process BAI2 statement files",
	Long:  `Process BAI2 statement files to convert to normalized balance and transaction CSV files.`,
	Run:   baiFunc,
}

func init() {
	Cmd.AddCommand(roundtripCmd)
}

func baiFunc(cmd *cobra.Command, args []string) {
	input := root.RequireInput()
	root.Log.Infof("Input BAI2 file: %s", input)
	root.Log.Infof("Output directory: %s", root.OutputDir())

	if root.SharedFlags.Validate {
		valid, err := baiparser.ValidateFormat(input)
		if err != nil {
			root.Log.Fatalf("Error validating file format: %v", err)
		}
		if !valid {
			root.Log.Fatalf("File is not a BAI2 statement: %s", input)
		}
	}

	err := baiparser.ConvertToCSV(input, root.OutputDir(), root.Identity(), root.Mapping(), root.ParseOptions())
	if err != nil {
		root.Log.Fatalf("Error converting BAI2 file: %v", err)
	}
	root.Log.Info("BAI2 to CSV conversion completed successfully!")
}

// roundtripCmd re-serializes a parsed file, proving the parse was lossless.
var roundtripCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Parse and re-serialize a BAI2 file",
	Long:  `Parse a BAI2 file and write it back out, verifying that serialization reproduces the input.`,
	Run:   roundtripFunc,
}

func roundtripFunc(cmd *cobra.Command, args []string) {
	input := root.RequireInput()

	f, err := baiparser.ParseFile(input, root.ParseOptions())
	if err != nil {
		root.Log.Fatalf("Error parsing BAI2 file: %v", err)
	}

	opts := bai2.DefaultWriteOptions()
	opts.LineLength = root.Cfg.BAI.LineLength
	output := bai2.WriteString(f, opts)

	original, err := fileutils.ReadFile(input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}
	if strings.TrimRight(string(original), "\r\n") == output {
		root.Log.Info("Round trip reproduced the input exactly")
	} else {
		root.Log.Warn("Round trip output differs from the input")
	}

	if root.SharedFlags.Output != "" {
		outPath := root.SharedFlags.Output
		if err := fileutils.WriteFile(outPath, []byte(output+"\n"), 0644); err != nil {
			root.Log.Fatalf("Error writing output file: %v", err)
		}
		root.Log.Infof("Wrote re-serialized file to %s", outPath)
	}
}
