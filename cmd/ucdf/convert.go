package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bysensa/ucdf"
	"github.com/bysensa/ucdf/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to> <input>",
	Short: "Convert between UCDF and other connection notations",
	Long: `convert translates between UCDF descriptors and other connection
notations. Supported conversions:

  jdbc ucdf     JDBC URL to descriptor
  ucdf jdbc     descriptor to JDBC URL (db.* sources only)
  url ucdf      generic URL to descriptor
  ucdf url      descriptor to URL (api.* sources only)
  mongodb ucdf  MongoDB URI to descriptor`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, input := args[0], args[1], args[2]
		switch from + ">" + to {
		case "jdbc>ucdf":
			doc, err := convert.FromJDBC(input)
			if err != nil {
				return err
			}
			cmd.Println(doc.String())
		case "ucdf>jdbc":
			doc, err := ucdf.Parse(input)
			if err != nil {
				return err
			}
			jdbcURL, err := convert.ToJDBC(doc)
			if err != nil {
				return err
			}
			cmd.Println(jdbcURL)
		case "url>ucdf":
			doc, err := convert.FromURL(input)
			if err != nil {
				return err
			}
			cmd.Println(doc.String())
		case "ucdf>url":
			doc, err := ucdf.Parse(input)
			if err != nil {
				return err
			}
			rawURL, err := convert.ToURL(doc)
			if err != nil {
				return err
			}
			cmd.Println(rawURL)
		case "mongodb>ucdf":
			doc, err := convert.FromMongoURI(input)
			if err != nil {
				return err
			}
			cmd.Println(doc.String())
		default:
			return fmt.Errorf("unsupported conversion from %q to %q", from, to)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
