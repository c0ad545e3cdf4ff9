package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <msgid>",
	Short: "Look up the translation for a message id",
	Long: `Look up the translation for a message id in the loaded catalog.
An unknown id prints the id itself, following gettext fallback rules.

Example:
  mocat lookup --catalog nl.mo "String English One"
  mocat lookup --catalog nl.mo --context "TEST|String|1" "String English"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := readerFromCmd(cmd)
		if err != nil {
			return err
		}

		msgContext, _ := cmd.Flags().GetString("context")

		var translation string
		if msgContext != "" {
			translation = reader.LookupWithContext(msgContext, args[0])
		} else {
			translation = reader.Lookup(args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), translation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().String("context", "", "Disambiguation context for the lookup")
}
