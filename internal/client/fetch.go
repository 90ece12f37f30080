package client

import (
	"context"

	"github.com/PeteRichardson/Protect/pkg/models"
)

// fetchCached returns the cached collection for T, fetching and decoding it
// on first use. A failed fetch or decode leaves the slot empty, so the next
// caller retries. The cache check and store are guarded but the fetch is
// not: concurrent first calls may each issue a request, and whichever decode
// lands last wins. Both results are valid decodes, so the cache stays
// self-consistent either way.
func fetchCached[T models.Fetchable](ctx context.Context, c *ProtectClient, slot *[]T) ([]T, error) {
	var zero T
	kind := zero.PathSuffix()

	c.mu.Lock()
	if *slot != nil {
		cached := *slot
		c.mu.Unlock()
		c.log.Debug().Str("kind", kind).Msg("cache hit")
		return cached, nil
	}
	c.mu.Unlock()

	c.log.Debug().Str("kind", kind).Msg("cache miss")

	body, err := c.do(ctx, apiRequest{path: kind})
	if err != nil {
		return nil, err
	}

	list, err := models.DecodeList[T](body)
	if err != nil {
		return nil, &DecodingError{Err: err}
	}

	c.mu.Lock()
	*slot = list
	c.mu.Unlock()

	return list, nil
}
