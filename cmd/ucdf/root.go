package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ucdf",
	Short: "Work with UCDF data source descriptors",
	Long: `ucdf parses, validates and converts UCDF descriptors: single-line
descriptions of a data source's type, connection, schema and access mode.

Examples:
  ucdf parse "t=file.csv;c.path=/data/users.csv;s.fields=id:int,name:str;a=r"
  ucdf validate "t=db.postgresql;c.host=localhost;a=rw"
  ucdf convert jdbc ucdf "jdbc:postgresql://localhost:5432/mydb?user=postgres"
  ucdf generate kafka`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
