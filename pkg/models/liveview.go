package models

import (
	"fmt"
	"strconv"
)

// Slot describes which cameras cycle through one cell of a liveview layout.
// Camera references are IDs only; nothing checks them against the camera
// collection.
type Slot struct {
	Cameras       []string `json:"cameras"`
	CycleMode     string   `json:"cycleMode"`
	CycleInterval int      `json:"cycleInterval"` // seconds
}

// Liveview represents a saved view layout on the Protect console.
type Liveview struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
	IsGlobal  bool   `json:"isGlobal"`
	Owner     string `json:"owner"` // opaque user reference
	Layout    int    `json:"layout"`
	Slots     []Slot `json:"slots"`
}

func (Liveview) PathSuffix() string { return "liveviews" }

func (l Liveview) Identity() string    { return l.ID }
func (l Liveview) DisplayName() string { return l.Name }

func (Liveview) CSVHeader() string {
	return "name,id,isDefault,isGlobal,owner,layout,slots"
}

func (l Liveview) CSVRow() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%d,%d",
		l.Name,
		l.ID,
		strconv.FormatBool(l.IsDefault),
		strconv.FormatBool(l.IsGlobal),
		l.Owner,
		l.Layout,
		len(l.Slots),
	)
}
