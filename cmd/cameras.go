package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/PeteRichardson/Protect/pkg/models"
)

// Variables to hold flag values
var (
	cameraName  string
	outputFile  string
	highQuality bool
	sortCameras bool
)

// Parent Command
var camerasCmd = &cobra.Command{
	Use:   "cameras",
	Short: "Manage cameras",
	Long:  `List cameras, take snapshots, or resolve camera names to IDs.`,
}

// List Command
var camerasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cameras",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		cameras, err := api.Cameras(context.Background())
		if err != nil {
			fmt.Printf("Error fetching cameras: %v\n", err)
			os.Exit(1)
		}

		if sortCameras {
			models.SortByName(cameras)
		}

		if jsonOutput {
			printJSON(cameras)
			return
		}
		if csvOutput {
			printCSV(cameras)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tID\tSTATE\tMIC\tVOLUME\tVIDEO\tHDR")
		fmt.Fprintln(w, "----\t--\t-----\t---\t------\t-----\t---")

		for _, cam := range cameras {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%d\t%s\t%s\n",
				cam.Name,
				cam.ID,
				cam.State,
				cam.IsMicEnabled,
				cam.MicVolume,
				cam.VideoMode,
				cam.HDRType,
			)
		}
		w.Flush()
	},
}

// Snapshot Command
var camerasSnapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Short:   "Take a JPEG snapshot from a camera",
	Example: `  protect-cli cameras snapshot --name "Front Door" --output "front.jpg"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Requesting snapshot from camera %q ...\n", cameraName)

		imgData, err := api.Snapshot(context.Background(), cameraName, highQuality)
		if err != nil {
			fmt.Printf("Error getting snapshot: %v\n", err)
			os.Exit(1)
		}

		if err := os.WriteFile(outputFile, imgData, 0644); err != nil {
			fmt.Printf("Error writing file: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Snapshot saved to %s\n", outputFile)
	},
}

// ID Lookup Command
var camerasIDCmd = &cobra.Command{
	Use:     "id",
	Short:   "Resolve a camera name to its ID",
	Example: `  protect-cli cameras id --name "Front Door"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		id, err := api.CameraIDByName(context.Background(), cameraName)
		if err != nil {
			fmt.Printf("Error looking up camera: %v\n", err)
			os.Exit(1)
		}
		if id == "" {
			fmt.Printf("No camera named %q\n", cameraName)
			return
		}
		fmt.Println(id)
	},
}

func init() {
	// Register Parent
	rootCmd.AddCommand(camerasCmd)

	// Register Subcommands
	camerasCmd.AddCommand(camerasListCmd)
	camerasCmd.AddCommand(camerasSnapshotCmd)
	camerasCmd.AddCommand(camerasIDCmd)

	// Flags for List
	camerasListCmd.Flags().BoolVar(&sortCameras, "sort", false, "Sort by camera name")

	// Flags for Snapshot
	camerasSnapshotCmd.Flags().StringVar(&cameraName, "name", "", "Name of the camera (case-insensitive)")
	camerasSnapshotCmd.Flags().StringVar(&outputFile, "output", "snapshot.jpg", "Output filename")
	camerasSnapshotCmd.Flags().BoolVar(&highQuality, "high-quality", false, "Request a high quality frame (currently no effect)")
	_ = camerasSnapshotCmd.MarkFlagRequired("name")

	// Flags for ID lookup
	camerasIDCmd.Flags().StringVar(&cameraName, "name", "", "Name of the camera (case-insensitive)")
	_ = camerasIDCmd.MarkFlagRequired("name")
}
