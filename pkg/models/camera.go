package models

import (
	"fmt"
	"strconv"
)

// Camera represents a single Protect camera device.
type Camera struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	State        string `json:"state"` // e.g. "CONNECTED", "DISCONNECTED"
	IsMicEnabled bool   `json:"isMicEnabled"`
	MicVolume    int    `json:"micVolume"` // 0-100, not validated client-side
	VideoMode    string `json:"videoMode"`
	HDRType      string `json:"hdrType"`
}

func (Camera) PathSuffix() string { return "cameras" }

func (c Camera) Identity() string    { return c.ID }
func (c Camera) DisplayName() string { return c.Name }

func (Camera) CSVHeader() string {
	return "name,id,state,isMicEnabled,micVolume,videoMode,hdrType"
}

func (c Camera) CSVRow() string {
	return fmt.Sprintf("%s,%s,%s,%s,%d,%s,%s",
		c.Name,
		c.ID,
		c.State,
		strconv.FormatBool(c.IsMicEnabled),
		c.MicVolume,
		c.VideoMode,
		c.HDRType,
	)
}
