package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	viewportID     string
	targetLiveview string
)

var viewportsCmd = &cobra.Command{
	Use:   "viewports",
	Short: "Manage viewports",
	Long:  `List viewport devices or change which liveview a viewport displays.`,
}

var viewportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all viewports",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()
		ctx := context.Background()

		viewports, err := api.Viewports(ctx)
		if err != nil {
			fmt.Printf("Error fetching viewports: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(viewports)
			return
		}
		if csvOutput {
			printCSV(viewports)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tID\tLIVEVIEW\tSTATE\tSTREAMS")
		fmt.Fprintln(w, "----\t--\t--------\t-----\t-------")

		for _, vp := range viewports {
			// Show the liveview name when the ID resolves; both fetches
			// share the client's cache.
			display := vp.Liveview
			if name, err := api.LiveviewNameByID(ctx, vp.Liveview); err == nil && name != "" {
				display = name
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				vp.Name,
				vp.ID,
				display,
				vp.State,
				vp.StreamLimit,
			)
		}
		w.Flush()
	},
}

var viewportsSetCmd = &cobra.Command{
	Use:     "set-liveview",
	Short:   "Point a viewport at a different liveview",
	Example: `  protect-cli viewports set-liveview --id "vp_123" --liveview "lv_456"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		err := api.SetViewportLiveview(context.Background(), viewportID, targetLiveview)
		if err != nil {
			fmt.Printf("Error changing viewport liveview: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Viewport %s now shows liveview %s\n", viewportID, targetLiveview)
	},
}

func init() {
	rootCmd.AddCommand(viewportsCmd)

	viewportsCmd.AddCommand(viewportsListCmd)
	viewportsCmd.AddCommand(viewportsSetCmd)

	viewportsSetCmd.Flags().StringVar(&viewportID, "id", "", "ID of the viewport")
	viewportsSetCmd.Flags().StringVar(&targetLiveview, "liveview", "", "ID of the liveview to display")
	_ = viewportsSetCmd.MarkFlagRequired("id")
	_ = viewportsSetCmd.MarkFlagRequired("liveview")
}
