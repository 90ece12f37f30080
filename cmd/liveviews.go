package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var liveviewID string

var liveviewsCmd = &cobra.Command{
	Use:   "liveviews",
	Short: "Inspect liveviews",
	Long:  `List liveview layouts or resolve a liveview ID to its name.`,
}

var liveviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all liveviews",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		liveviews, err := api.Liveviews(context.Background())
		if err != nil {
			fmt.Printf("Error fetching liveviews: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(liveviews)
			return
		}
		if csvOutput {
			printCSV(liveviews)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tID\tDEFAULT\tGLOBAL\tLAYOUT\tSLOTS")
		fmt.Fprintln(w, "----\t--\t-------\t------\t------\t-----")

		for _, lv := range liveviews {
			var cells []string
			for _, slot := range lv.Slots {
				cells = append(cells, fmt.Sprintf("%d cam", len(slot.Cameras)))
			}
			fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%d\t%s\n",
				lv.Name,
				lv.ID,
				lv.IsDefault,
				lv.IsGlobal,
				lv.Layout,
				strings.Join(cells, ", "),
			)
		}
		w.Flush()
	},
}

var liveviewsNameCmd = &cobra.Command{
	Use:     "name",
	Short:   "Resolve a liveview ID to its name",
	Example: `  protect-cli liveviews name --id "lv_abc123"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		name, err := api.LiveviewNameByID(context.Background(), liveviewID)
		if err != nil {
			fmt.Printf("Error looking up liveview: %v\n", err)
			os.Exit(1)
		}
		if name == "" {
			fmt.Printf("No liveview with ID %q\n", liveviewID)
			return
		}
		fmt.Println(name)
	},
}

func init() {
	rootCmd.AddCommand(liveviewsCmd)

	liveviewsCmd.AddCommand(liveviewsListCmd)
	liveviewsCmd.AddCommand(liveviewsNameCmd)

	liveviewsNameCmd.Flags().StringVar(&liveviewID, "id", "", "ID of the liveview")
	_ = liveviewsNameCmd.MarkFlagRequired("id")
}
