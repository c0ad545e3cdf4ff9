package cmd

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnotherFoxGuy/mofilereader/pkg/catalog"
)

// htmlExportTemplate renders the catalog as a plain HTML table.
var htmlExportTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Catalog export</title></head>
<body>
<table border="1">
<tr><th>Context</th><th>Message</th><th>Translation</th></tr>
{{range .}}<tr><td>{{.Context}}</td><td>{{.ID}}</td><td>{{.Translation}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all catalog entries as HTML or JSON",
	Long: `Dump every entry of the loaded catalog, sorted by context and
message id.

Example:
  mocat export --catalog nl.mo --format html --output nl.html
  mocat export --catalog nl.mo --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := readerFromCmd(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		var out io.Writer = cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		return writeExport(out, format, reader.Entries())
	},
}

func writeExport(out io.Writer, format string, entries []catalog.Entry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "html":
		return htmlExportTemplate.Execute(out, entries)
	default:
		return fmt.Errorf("unknown export format %q (want html or json)", format)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("format", "json", "Export format: html or json")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
