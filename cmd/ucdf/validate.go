package main

import (
	"github.com/spf13/cobra"

	"github.com/bysensa/ucdf"
)

var validateCmd = &cobra.Command{
	Use:   "validate <descriptor>",
	Short: "Validate a descriptor without displaying its components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := ucdf.Parse(args[0]); err != nil {
			return err
		}
		cmd.Println("valid")
		return nil
	},
}

var canonCmd = &cobra.Command{
	Use:   "canon <descriptor>",
	Short: "Re-emit a descriptor in canonical form",
	Long: `canon parses a descriptor and prints the canonical rendering:
sections in fixed order (type, connection, structure, access, metadata)
with c./s./m. keys in their original insertion order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := ucdf.Parse(args[0])
		if err != nil {
			return err
		}
		cmd.Println(doc.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(canonCmd)
}
