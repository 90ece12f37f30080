package client

import (
	"context"

	"github.com/PeteRichardson/Protect/pkg/models"
)

// Liveviews returns the liveview collection, fetched once per client lifetime.
func (c *ProtectClient) Liveviews(ctx context.Context) ([]models.Liveview, error) {
	return fetchCached(ctx, c, &c.liveviews)
}
