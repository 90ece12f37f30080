package client

import (
	"context"
	"fmt"

	"github.com/PeteRichardson/Protect/pkg/models"
)

// Cameras returns the camera collection, fetched once per client lifetime.
func (c *ProtectClient) Cameras(ctx context.Context) ([]models.Camera, error) {
	return fetchCached(ctx, c, &c.cameras)
}

// Snapshot fetches a live JPEG frame from the named camera. Snapshots are
// never cached; every call hits the camera.
//
// highQuality is accepted for interface symmetry but does not change the
// request: the snapshot endpoint takes no quality parameter today.
func (c *ProtectClient) Snapshot(ctx context.Context, cameraName string, highQuality bool) ([]byte, error) {
	_ = highQuality

	id, err := c.CameraIDByName(ctx, cameraName)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &NotFoundError{Kind: "camera", Name: cameraName}
	}

	return c.do(ctx, apiRequest{
		path:   fmt.Sprintf("cameras/%s/snapshot", id),
		accept: "image/jpeg",
	})
}
