package main

import (
	"fmt"
	"os"

	"github.com/Hemanth4041/statement-loader/cmd/bai"
	"github.com/Hemanth4041/statement-loader/cmd/batch"
	"github.com/Hemanth4041/statement-loader/cmd/camt"
	"github.com/Hemanth4041/statement-loader/cmd/csvfile"
	"github.com/Hemanth4041/statement-loader/cmd/process"
	"github.com/Hemanth4041/statement-loader/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(bai.Cmd)
	root.Cmd.AddCommand(camt.Cmd)
	root.Cmd.AddCommand(csvfile.Cmd)
	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
