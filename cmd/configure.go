package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PeteRichardson/Protect/internal/client"
	"github.com/PeteRichardson/Protect/internal/config"
)

// Variables to hold flag values
var (
	cfgHost   string
	cfgAPIKey string
)

// configureCmd stores the console address and API key for later commands.
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store console address and API key",
	Long: `Saves the Protect console address and integration API key locally so
other commands can authenticate.

Generate the key on the console under Settings > Control Plane > Integrations.

Example:
  protect-cli configure --host "https://192.168.1.1" --api-key "xxxxxxxx"`,
	Run: func(cmd *cobra.Command, args []string) {
		// Clean up input host (remove trailing slash if present)
		cfgHost = strings.TrimRight(cfgHost, "/")

		fmt.Printf("Checking API access on %s...\n", cfgHost)

		// Verify the key works before persisting anything.
		api := client.New(client.ClientConfig{Host: cfgHost, APIKey: cfgAPIKey})
		cameras, err := api.Cameras(context.Background())
		if err != nil {
			log.Fatalf("Fatal: API check failed: %v", err)
		}

		fmt.Printf("Connected. Console reports %d camera(s). Saving configuration...\n", len(cameras))

		if err := config.SaveCredentials(cfgHost, cfgAPIKey); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Println("Configuration saved. You can now run commands like './protect-cli cameras list'.")
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().StringVar(&cfgHost, "host", "", "Console address (e.g. https://192.168.1.1)")
	configureCmd.Flags().StringVar(&cfgAPIKey, "api-key", "", "Integration API key")

	_ = configureCmd.MarkFlagRequired("host")
	_ = configureCmd.MarkFlagRequired("api-key")
}
