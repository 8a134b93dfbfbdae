// Package batch converts whole directories of statement files.
package batch

import (
	"github.com/spf13/cobra"

	"github.com/Hemanth4041/statement-loader/cmd/root"
	"github.com/Hemanth4041/statement-loader/internal/baiparser"
	"github.com/Hemanth4041/statement-loader/internal/camtparser"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert a directory of statement files to CSV",
	Long:  `Convert every BAI2 and CAMT.053 statement in a directory to normalized CSV files.`,
	Run:   batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "", "Directory containing statement files")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "t", "", "Directory for CSV output")
}

func batchFunc(cmd *cobra.Command, args []string) {
	if inputDir == "" {
		root.Log.Fatal("Input directory is required, use --input-dir")
	}
	if outputDir == "" {
		outputDir = root.OutputDir()
	}

	baiCount, err := baiparser.BatchConvert(inputDir, outputDir, root.Identity(), root.Mapping(), root.ParseOptions())
	if err != nil {
		root.Log.Fatalf("Error converting BAI2 files: %v", err)
	}

	camtCount, err := camtparser.BatchConvert(inputDir, outputDir, root.Identity())
	if err != nil {
		root.Log.Fatalf("Error converting CAMT.053 files: %v", err)
	}

	root.Log.Infof("Converted %d BAI2 and %d CAMT.053 files", baiCount, camtCount)
}
