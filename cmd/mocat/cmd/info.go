package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show header and entry statistics of the loaded catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := readerFromCmd(cmd)
		if err != nil {
			return err
		}
		cfg, err := configFromCmd(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cfg.CatalogPath != "" {
			fmt.Fprintf(out, "Catalog:                  %s\n", cfg.CatalogPath)
		}

		header := reader.Header()
		if header == nil {
			fmt.Fprintln(out, "No catalog loaded")
			return nil
		}

		fmt.Fprintf(out, "Magic number:             0x%08x\n", header.Magic)
		fmt.Fprintf(out, "Format version:           %d\n", header.FormatVersion)
		fmt.Fprintf(out, "String count:             %d\n", header.StringCount)
		fmt.Fprintf(out, "Original table offset:    %d\n", header.OriginalTableOffset)
		fmt.Fprintf(out, "Translation table offset: %d\n", header.TranslationTableOffset)
		fmt.Fprintf(out, "Hash table size:          %d (unused)\n", header.HashTableSize)
		fmt.Fprintf(out, "Hash table offset:        %d (unused)\n", header.HashTableOffset)
		flat, contextual := 0, 0
		contexts := make(map[string]struct{})
		for _, e := range reader.Entries() {
			if e.Context == "" {
				flat++
				continue
			}
			contextual++
			contexts[e.Context] = struct{}{}
		}
		fmt.Fprintf(out, "Resolved entries:         %d\n", reader.Count())
		fmt.Fprintf(out, "Flat entries:             %d\n", flat)
		fmt.Fprintf(out, "Contextual entries:       %d\n", contextual)
		fmt.Fprintf(out, "Contexts:                 %d\n", len(contexts))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
