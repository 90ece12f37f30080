package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PeteRichardson/Protect/internal/client"
	"github.com/PeteRichardson/Protect/internal/config"
)

var cfgFile string
var jsonOutput bool
var csvOutput bool
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "protect-cli",
	Short: "A CLI for the UniFi Protect Integration API",
	Long: `Manage cameras, liveviews, and viewports on a UniFi Protect console
via its local integration API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setupClient builds an API client from the stored configuration. Exits with
// a hint when the CLI has not been configured yet.
func setupClient() *client.ProtectClient {
	host := viper.GetString("host")
	apiKey := viper.GetString("api_key")

	if host == "" || apiKey == "" {
		fmt.Println("Error: Not configured. Please run 'protect-cli configure' first.")
		os.Exit(1)
	}

	api := client.New(client.ClientConfig{Host: host, APIKey: apiKey})
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		api = api.WithLogger(logger)
	}
	return api
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.protect-cli.yaml)")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&csvOutput, "csv", false, "Output results as CSV")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API requests to stderr")
}
