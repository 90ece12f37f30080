package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/PeteRichardson/Protect/internal/client"
)

// Variables to hold flag values
var (
	expHost       string
	expAPIKey     string
	expPort       string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	cfg    client.ClientConfig
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	collector := &ProtectCollector{Config: p.cfg}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Protect Exporter listening on %s", addr)

	// Blocking call to listen
	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR LOGIC ---

// ProtectCollector scrapes the integration API on demand. Each scrape builds
// a fresh client: collections are cached for a client's lifetime, so reusing
// one would pin the first scrape's data forever.
type ProtectCollector struct {
	Config client.ClientConfig
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"protect_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"protect_scrape_duration_seconds", "Time taken to scrape API.", nil, nil,
	)
	cameraUpDesc = prometheus.NewDesc(
		"protect_camera_up", "Camera connection status.", []string{"id", "name"}, nil,
	)
	cameraMicVolumeDesc = prometheus.NewDesc(
		"protect_camera_mic_volume", "Microphone volume (0-100).", []string{"id", "name"}, nil,
	)
	cameraCountDesc = prometheus.NewDesc(
		"protect_cameras_total", "Total cameras grouped by state.", []string{"state"}, nil,
	)
	viewportCountDesc = prometheus.NewDesc(
		"protect_viewports_total", "Number of viewport devices.", nil, nil,
	)
	liveviewCountDesc = prometheus.NewDesc(
		"protect_liveviews_total", "Number of liveview layouts.", nil, nil,
	)
)

func (c *ProtectCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- cameraUpDesc
	ch <- cameraMicVolumeDesc
	ch <- cameraCountDesc
	ch <- viewportCountDesc
	ch <- liveviewCountDesc
}

func (c *ProtectCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	api := client.New(c.Config)
	ctx := context.Background()

	// 1. Cameras
	if cams, err := api.Cameras(ctx); err == nil {
		stateCounts := make(map[string]float64)
		for _, cam := range cams {
			isUp := 0.0
			if strings.EqualFold(cam.State, "CONNECTED") {
				isUp = 1.0
			}
			ch <- prometheus.MustNewConstMetric(cameraUpDesc, prometheus.GaugeValue, isUp, cam.ID, cam.Name)

			if cam.IsMicEnabled {
				ch <- prometheus.MustNewConstMetric(cameraMicVolumeDesc, prometheus.GaugeValue, float64(cam.MicVolume), cam.ID, cam.Name)
			}

			st := strings.ToUpper(cam.State)
			if st == "" {
				st = "UNKNOWN"
			}
			stateCounts[st]++
		}
		for st, cnt := range stateCounts {
			ch <- prometheus.MustNewConstMetric(cameraCountDesc, prometheus.GaugeValue, cnt, st)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping cameras: %v", err)
	}

	// 2. Viewports
	if vps, err := api.Viewports(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(viewportCountDesc, prometheus.GaugeValue, float64(len(vps)))
	} else {
		success = 0.0
		log.Printf("Error scraping viewports: %v", err)
	}

	// 3. Liveviews
	if lvs, err := api.Liveviews(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(liveviewCountDesc, prometheus.GaugeValue, float64(len(lvs)))
	} else {
		success = 0.0
		log.Printf("Error scraping liveviews: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes Protect metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Setup Client Config
		hostClean := strings.TrimRight(expHost, "/")
		cfg := client.ClientConfig{
			Host:   hostClean,
			APIKey: expAPIKey,
		}

		// 2. Define Service Configuration
		svcConfig := &service.Config{
			Name:        "protect-exporter",
			DisplayName: "Protect Prometheus Exporter",
			Description: "Exposes UniFi Protect metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--host", expHost,
				"--api-key", expAPIKey,
				"--port", expPort,
			},
		}

		prg := &program{
			cfg: cfg,
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// 3. Handle Service Control Actions (Install, Start, Stop, Uninstall)
		if serviceAction != "" {
			if serviceAction == "install" {
				if expHost == "" || expAPIKey == "" {
					log.Fatal("Error: You must provide --host and --api-key to install the service.")
				}
			}

			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// 4. Run the Service (Blocking)
		// This happens when the Service Manager starts the binary, OR when run interactively
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expHost, "host", "", "Console address")
	exporterCmd.Flags().StringVar(&expAPIKey, "api-key", "", "Integration API key")
	exporterCmd.Flags().StringVar(&expPort, "port", "9100", "Port to listen on")

	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
