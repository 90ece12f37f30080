package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PeteRichardson/Protect/pkg/models"
)

// printJSON writes any value as indented JSON to stdout.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

// printCSV writes a collection using its CSV projection, header first.
func printCSV[T models.Fetchable](list []T) {
	var zero T
	fmt.Println(zero.CSVHeader())
	for _, r := range list {
		fmt.Println(r.CSVRow())
	}
}
