package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AnotherFoxGuy/mofilereader/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve catalog lookups over HTTP",
	Long: `Start the mocat HTTP server. The loaded catalog is exposed under
/api/v1 (lookup, info, entries, reload) with Prometheus metrics on
/metrics. Setting an API key protects /api/v1 behind the X-API-Key header.

Examples:
  mocat serve --catalog nl.mo --port 8080
  mocat serve --catalog nl.mo --api-key mysecret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := readerFromCmd(cmd)
		if err != nil {
			return err
		}
		cfg, err := configFromCmd(cmd)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Server.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Server.APIKey, _ = cmd.Flags().GetString("api-key")
		}

		serverConfig := api.ServerConfig{
			Bind:        cfg.Server.Bind,
			Port:        cfg.Server.Port,
			APIKey:      cfg.Server.APIKey,
			CatalogPath: cfg.CatalogPath,
		}

		return container.GetServerFactory().CreateServerStarter().StartServer(reader, serverConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key protecting /api/v1 (optional)")
}
