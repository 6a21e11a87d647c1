package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bysensa/ucdf"
)

var generateCmd = &cobra.Command{
	Use:   "generate <kind>",
	Short: "Generate a sample descriptor",
	Long: `generate emits a sample descriptor for a well-known source kind:
csv, postgresql, rest, kafka or mongodb.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := sampleDoc(args[0])
		if err != nil {
			return err
		}
		cmd.Println(doc.String())
		return nil
	},
}

func sampleDoc(kind string) (ucdf.Doc, error) {
	switch strings.ToLower(kind) {
	case "csv", "file":
		return ucdf.New(ucdf.SourceType{Category: "file", Subtype: "csv"}).
			WithConnection("path", "/data/users.csv").
			WithConnection("encoding", "utf-8").
			WithFields([]ucdf.Field{
				{Name: "id", Type: "int"},
				{Name: "name", Type: "str"},
				{Name: "email", Type: "str"},
				{Name: "created_at", Type: "date"},
			}).
			WithAccessMode(ucdf.AccessRead).
			WithMetadata("desc", "User data file"), nil
	case "postgresql", "db":
		return ucdf.New(ucdf.SourceType{Category: "db", Subtype: "postgresql"}).
			WithConnection("host", "localhost").
			WithConnection("port", "5432").
			WithConnection("db", "myapp").
			WithConnection("user", "postgres").
			WithFields([]ucdf.Field{
				{Name: "id", Type: "int"},
				{Name: "name", Type: "str"},
				{Name: "email", Type: "str"},
			}).
			WithAccessMode(ucdf.AccessReadWrite).
			WithMetadata("desc", "PostgreSQL database"), nil
	case "rest", "api":
		return ucdf.New(ucdf.SourceType{Category: "api", Subtype: "rest"}).
			WithConnection("url", "https://api.example.com").
			WithEndpoints([]ucdf.Endpoint{
				{Path: "/users", Method: "GET"},
				{Path: "/users", Method: "POST"},
			}).
			WithAccessMode(ucdf.AccessReadWrite).
			WithMetadata("desc", "REST API for user management"), nil
	case "kafka", "stream":
		return ucdf.New(ucdf.SourceType{Category: "stream", Subtype: "kafka"}).
			WithConnection("brokers", "broker1:9092,broker2:9092").
			WithConnection("topic", "events").
			WithConnection("group_id", "consumer_group_1").
			WithFormat("json").
			WithFields([]ucdf.Field{
				{Name: "event_id", Type: "str"},
				{Name: "timestamp", Type: "datetime"},
				{Name: "payload", Type: "json"},
			}).
			WithAccessMode(ucdf.AccessRead).
			WithMetadata("desc", "Kafka event stream"), nil
	case "mongodb":
		return ucdf.New(ucdf.SourceType{Category: "db", Subtype: "mongodb"}).
			WithConnection("uri", "mongodb://localhost:27017").
			WithConnection("db", "myapp").
			WithFields([]ucdf.Field{
				{Name: "_id", Type: "str"},
				{Name: "name", Type: "str"},
				{Name: "data", Type: "json"},
			}).
			WithAccessMode(ucdf.AccessReadWrite).
			WithMetadata("desc", "MongoDB database"), nil
	default:
		return ucdf.Doc{}, fmt.Errorf("unknown source kind %q (want csv, postgresql, rest, kafka or mongodb)", kind)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
