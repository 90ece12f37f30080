package client

import (
	"context"
	"crypto/tls"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/PeteRichardson/Protect/pkg/models"
)

// apiPrefix is the integration API mount point on the console.
const apiPrefix = "/proxy/protect/integration/v1"

const contentTypeJSON = "application/json"

// ProtectClient talks to the integration API of one Protect console.
// Collections fetched through it are cached for the client's lifetime; make
// a new client to see fresh data.
type ProtectClient struct {
	HTTP   *resty.Client
	Config ClientConfig
	log    zerolog.Logger

	// mu guards the cache slots below. The network fetch itself runs
	// unlocked, so two concurrent first fetches of a kind may both hit the
	// API; the last decode to land is kept.
	mu        sync.Mutex
	cameras   []models.Camera
	liveviews []models.Liveview
	viewports []models.Viewport
}

type ClientConfig struct {
	Host   string // console address, e.g. https://192.168.1.1
	APIKey string // pre-shared key from the console's integrations page
}

func New(cfg ClientConfig) *ProtectClient {
	r := resty.New()
	r.SetBaseURL(strings.TrimRight(cfg.Host, "/") + apiPrefix)

	// Local consoles ship self-signed certs.
	r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})

	return &ProtectClient{
		HTTP:   r,
		Config: cfg,
		log:    zerolog.Nop(),
	}
}

// WithLogger enables diagnostic events (request issued, response status,
// cache hit/miss). The events are advisory; delivery never affects results.
func (c *ProtectClient) WithLogger(log zerolog.Logger) *ProtectClient {
	c.log = log
	return c
}

// apiRequest describes one call through the executor. Zero values mean the
// defaults: GET, JSON accept, no body, standard headers.
type apiRequest struct {
	path    string
	method  string
	headers map[string]string // replaces the default header set entirely
	body    any
	accept  string
}

// do sends one authenticated request and returns the raw response body.
// Any non-2xx status becomes an HTTPStatusError; failures below the HTTP
// layer become a TransportError. No retries.
func (c *ProtectClient) do(ctx context.Context, req apiRequest) ([]byte, error) {
	method := req.method
	if method == "" {
		method = http.MethodGet
	}
	accept := req.accept
	if accept == "" {
		accept = contentTypeJSON
	}

	r := c.HTTP.R().SetContext(ctx)
	if req.headers != nil {
		r.SetHeaders(req.headers)
	} else {
		r.SetHeader("X-API-KEY", c.Config.APIKey)
		r.SetHeader("Content-Type", contentTypeJSON)
		r.SetHeader("Accept", accept)
	}
	if req.body != nil {
		r.SetBody(req.body)
	}

	c.log.Debug().Str("method", method).Str("path", req.path).Msg("api request")

	resp, err := r.Execute(method, req.path)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.log.Debug().Str("path", req.path).Int("status", resp.StatusCode()).Msg("api response")

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &HTTPStatusError{Code: resp.StatusCode()}
	}
	return resp.Body(), nil
}
