package client

import (
	"context"
	"strings"
)

// CameraIDByName resolves a camera name to its ID, ignoring case. An empty
// ID with a nil error means no camera has that name; absence is a valid
// result here, not an error. When several cameras share a name the first in
// server order wins.
func (c *ProtectClient) CameraIDByName(ctx context.Context, name string) (string, error) {
	cameras, err := c.Cameras(ctx)
	if err != nil {
		return "", err
	}
	want := strings.ToLower(name)
	for _, cam := range cameras {
		if strings.ToLower(cam.Name) == want {
			return cam.ID, nil
		}
	}
	return "", nil
}

// ViewportIDByName resolves a viewport name to its ID, ignoring case. Same
// absence and tie-break rules as CameraIDByName.
func (c *ProtectClient) ViewportIDByName(ctx context.Context, name string) (string, error) {
	viewports, err := c.Viewports(ctx)
	if err != nil {
		return "", err
	}
	want := strings.ToLower(name)
	for _, vp := range viewports {
		if strings.ToLower(vp.Name) == want {
			return vp.ID, nil
		}
	}
	return "", nil
}

// LiveviewNameByID resolves a liveview ID to its display name. IDs match
// exactly; an empty name with a nil error means the ID is unknown.
func (c *ProtectClient) LiveviewNameByID(ctx context.Context, id string) (string, error) {
	liveviews, err := c.Liveviews(ctx)
	if err != nil {
		return "", err
	}
	for _, lv := range liveviews {
		if lv.ID == id {
			return lv.Name, nil
		}
	}
	return "", nil
}
