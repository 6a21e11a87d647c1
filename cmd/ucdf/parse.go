package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bysensa/ucdf"
)

var outputFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <descriptor>",
	Short: "Parse a descriptor and display its components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := ucdf.Parse(args[0])
		if err != nil {
			return err
		}
		log.Debug().
			Int("connection", doc.Connection().Len()).
			Int("structure", doc.Structure().Len()).
			Int("metadata", doc.Metadata().Len()).
			Msg("parsed descriptor")

		switch outputFormat {
		case "text":
			printDoc(cmd, doc)
		case "json":
			data, err := json.MarshalIndent(viewOf(doc), "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(data))
		case "yaml":
			data, err := yaml.Marshal(viewOf(doc))
			if err != nil {
				return err
			}
			cmd.Print(string(data))
		default:
			return fmt.Errorf("unknown output format %q (want text, json or yaml)", outputFormat)
		}
		return nil
	},
}

// docView is the export shape for --output json and yaml.
type docView struct {
	Type       string            `json:"type" yaml:"type"`
	Connection map[string]string `json:"connection,omitempty" yaml:"connection,omitempty"`
	Structure  map[string]string `json:"structure,omitempty" yaml:"structure,omitempty"`
	Access     string            `json:"access,omitempty" yaml:"access,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

func viewOf(doc ucdf.Doc) docView {
	view := docView{
		Type:   doc.SourceType().String(),
		Access: doc.AccessMode().String(),
	}
	if doc.Connection().Len() > 0 {
		view.Connection = toMap(doc.Connection())
	}
	if doc.Structure().Len() > 0 {
		view.Structure = toMap(doc.Structure())
	}
	if doc.Metadata().Len() > 0 {
		view.Metadata = toMap(doc.Metadata())
	}
	return view
}

func toMap(params ucdf.Params) map[string]string {
	m := make(map[string]string, params.Len())
	for key, value := range params.All() {
		m[key] = value
	}
	return m
}

func printDoc(cmd *cobra.Command, doc ucdf.Doc) {
	cmd.Println("Source Type:")
	cmd.Printf("  Category: %s\n", doc.SourceType().Category)
	if subtype := doc.SourceType().Subtype; subtype != "" {
		cmd.Printf("  Subtype: %s\n", subtype)
	}

	if doc.Connection().Len() > 0 {
		cmd.Println("\nConnection Parameters:")
		for key, value := range doc.Connection().All() {
			cmd.Printf("  %s: %s\n", key, maskSecret(key, value))
		}
	}

	if doc.Structure().Len() > 0 {
		cmd.Println("\nStructure:")
		for key, value := range doc.Structure().All() {
			switch key {
			case "fields":
				if fields, err := ucdf.ParseFields(value); err == nil {
					cmd.Println("  Fields:")
					for _, f := range fields {
						cmd.Printf("    %s: %s\n", f.Name, f.Type)
					}
					continue
				}
			case "endpoints":
				if endpoints, err := ucdf.ParseEndpoints(value); err == nil {
					cmd.Println("  Endpoints:")
					for _, e := range endpoints {
						cmd.Printf("    %s %s\n", e.Method, e.Path)
					}
					continue
				}
			}
			cmd.Printf("  %s: %s\n", key, value)
		}
	}

	if mode := doc.AccessMode(); mode != ucdf.AccessUnspecified {
		cmd.Printf("\nAccess Mode: %s\n", accessText(mode))
	}

	if doc.Metadata().Len() > 0 {
		cmd.Println("\nMetadata:")
		for key, value := range doc.Metadata().All() {
			cmd.Printf("  %s: %s\n", key, value)
		}
	}
}

func accessText(mode ucdf.AccessMode) string {
	switch mode {
	case ucdf.AccessRead:
		return "read-only (r)"
	case ucdf.AccessWrite:
		return "write-only (w)"
	case ucdf.AccessReadWrite:
		return "read-write (rw)"
	default:
		return "unspecified"
	}
}

// maskSecret hides values of credential-looking connection keys in text
// output. The json/yaml exports are machine-facing and left untouched.
func maskSecret(key, value string) string {
	lower := strings.ToLower(key)
	if strings.Contains(lower, "password") || strings.Contains(lower, "token") || strings.Contains(lower, "secret") {
		return strings.Repeat("*", len(value))
	}
	return value
}

func init() {
	parseCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(parseCmd)
}
