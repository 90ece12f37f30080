package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PeteRichardson/Protect/pkg/models"
)

// Viewports returns the viewer collection, fetched once per client lifetime.
func (c *ProtectClient) Viewports(ctx context.Context) ([]models.Viewport, error) {
	return fetchCached(ctx, c, &c.viewports)
}

// viewerPatch is the body for re-pointing a viewport at a liveview.
type viewerPatch struct {
	Liveview string `json:"liveview"`
}

// SetViewportLiveview points the viewport at a different liveview. Neither
// ID is checked locally; a bad target is the server's status to report. The
// response body is discarded on success.
func (c *ProtectClient) SetViewportLiveview(ctx context.Context, viewportID, liveviewID string) error {
	_, err := c.do(ctx, apiRequest{
		path:   fmt.Sprintf("viewers/%s", viewportID),
		method: http.MethodPatch,
		body:   viewerPatch{Liveview: liveviewID},
	})
	return err
}
