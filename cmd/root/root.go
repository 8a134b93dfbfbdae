// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hemanth4041/statement-loader/internal/bai2"
	"github.com/Hemanth4041/statement-loader/internal/baiparser"
	"github.com/Hemanth4041/statement-loader/internal/camtparser"
	"github.com/Hemanth4041/statement-loader/internal/common"
	"github.com/Hemanth4041/statement-loader/internal/config"
	"github.com/Hemanth4041/statement-loader/internal/crypto"
	"github.com/Hemanth4041/statement-loader/internal/csvparser"
	"github.com/Hemanth4041/statement-loader/internal/models"
	"github.com/Hemanth4041/statement-loader/internal/pipeline"
	"github.com/Hemanth4041/statement-loader/internal/store"
	"github.com/Hemanth4041/statement-loader/internal/validation"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the resolved application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statement-loader",
		Short: "A CLI tool to parse, validate and load bank statement files.",
		Long: `statement-loader ingests bank statements in BAI2, CAMT.053 and CSV
formats, normalizes them into balance and transaction rows, validates them
against a schema and loads them into the local warehouse.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-loader!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			baiparser.SetLogger(Log)
			camtparser.SetLogger(Log)
			csvparser.SetLogger(Log)
			pipeline.SetLogger(Log)
			validation.SetLogger(Log)
			crypto.SetLogger(Log)
			store.SetLogger(Log)
			common.SetLogger(Log)

			if delim := Cfg.CSV.Delimiter; delim != "" {
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds the common options for all commands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}

// Identity returns the row ownership fields from configuration.
func Identity() models.Identity {
	return models.Identity{
		OrganisationID:     Cfg.Identity.OrganisationID,
		DivisionID:         Cfg.Identity.DivisionID,
		BankID:             Cfg.Identity.BankID,
		FinancialInstitute: Cfg.Identity.FinancialInstitute,
	}
}

// Mapping resolves the BAI2 code mapping for the configured bank.
func Mapping() baiparser.Mapping {
	mf, err := baiparser.LoadMappingFile(Cfg.BAI.MappingPath)
	if err != nil {
		Log.Fatalf("Failed to load code mapping: %v", err)
	}
	return mf.ForBank(Cfg.Identity.BankID)
}

// ParseOptions builds the BAI2 parse options from configuration.
func ParseOptions() bai2.ParseOptions {
	return bai2.ParseOptions{
		CheckIntegrity:      Cfg.BAI.CheckIntegrity,
		IgnoredSummaryCodes: Cfg.BAI.IgnoredSummaryCodes,
	}
}

// Schema loads the validation schema, falling back to the built-in rules.
func Schema() *validation.Schema {
	if Cfg.Validation.SchemaPath == "" {
		return validation.DefaultSchema()
	}
	schema, err := validation.LoadSchema(Cfg.Validation.SchemaPath)
	if err != nil {
		Log.Fatalf("Failed to load validation schema: %v", err)
	}
	return schema
}

// Encryptor builds the field encryptor, or nil when encryption is off.
func Encryptor() *crypto.FieldEncryptor {
	if !Cfg.Encryption.Enabled {
		return nil
	}
	encryptor, err := crypto.NewFieldEncryptor([]byte(Cfg.Encryption.MasterKey))
	if err != nil {
		Log.Fatalf("Failed to initialize encryption: %v", err)
	}
	return encryptor
}

// OutputDir returns the output directory flag, or the configured default.
func OutputDir() string {
	if SharedFlags.Output != "" {
		return SharedFlags.Output
	}
	return Cfg.Directories.Output
}

// RequireInput exits unless the input flag was provided.
func RequireInput() string {
	if SharedFlags.Input == "" {
		Log.Fatal("Input file is required, use --input")
	}
	return SharedFlags.Input
}
