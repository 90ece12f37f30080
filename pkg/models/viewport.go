package models

import "fmt"

// Viewport represents a physical viewer device (e.g. a ViewPort appliance)
// that displays one liveview. The liveview field is an ID reference only.
type Viewport struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Liveview    string `json:"liveview"`
	State       string `json:"state"`
	StreamLimit int    `json:"streamLimit"`
}

// The API calls these "viewers".
func (Viewport) PathSuffix() string { return "viewers" }

func (v Viewport) Identity() string    { return v.ID }
func (v Viewport) DisplayName() string { return v.Name }

func (Viewport) CSVHeader() string {
	return "name,id,liveview,state,streamLimit"
}

func (v Viewport) CSVRow() string {
	return fmt.Sprintf("%s,%s,%s,%s,%d",
		v.Name,
		v.ID,
		v.Liveview,
		v.State,
		v.StreamLimit,
	)
}
