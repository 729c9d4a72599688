// Command osmfetch fetches OpenStreetMap objects from the API and prints
// them as JSON, one result per line.
//
// Usage:
//
//	osmfetch -mode object -type node 123 456
//	osmfetch -mode ways 123
//	osmfetch -mode history -type way 8
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/paulmach/osm"

	"github.com/m3th0s/osmlib-base/pkg/osmapi"
	"github.com/m3th0s/osmlib-base/pkg/tracing"
)

const version = "1.0.0"

var (
	showVersionFlag bool
	debug           bool

	baseURL    string
	userAgent  string
	objectType string
	mode       string

	// Rate limits for the API
	apiRPS   float64
	apiBurst int

	// Monitoring flags
	metricsAddr string
)

func init() {
	flag.BoolVar(&showVersionFlag, "version", false, "Display version information")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")

	flag.StringVar(&baseURL, "base-url", osmapi.DefaultBaseURL, "Base URL of the OSM API instance")
	flag.StringVar(&userAgent, "user-agent", osmapi.DefaultUserAgent, "User-Agent string for API requests")
	flag.StringVar(&objectType, "type", "node", "Object type: node, way or relation")
	flag.StringVar(&mode, "mode", "object", "Lookup mode: object, ways, relations or history")

	flag.Float64Var(&apiRPS, "rps", 1.0, "API rate limit in requests per second")
	flag.IntVar(&apiBurst, "burst", 1, "API rate limit burst size")

	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (disabled if empty)")
}

func main() {
	flag.Parse()

	// Configure logging
	var logLevel slog.Level
	if debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if showVersionFlag {
		fmt.Printf("osmfetch %s\n", version)
		return
	}

	ctx := context.Background()

	shutdown, err := tracing.InitTracing(ctx, version)
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer shutdown(ctx)

	if metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		logger.Info("serving metrics", "addr", metricsAddr)
	}

	ids, err := parseIDs(flag.Args())
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		os.Exit(2)
	}
	if len(ids) == 0 {
		logger.Error("no object ids given")
		flag.Usage()
		os.Exit(2)
	}

	client := osmapi.New(
		osmapi.WithBaseURL(baseURL),
		osmapi.WithUserAgent(userAgent),
		osmapi.WithRateLimit(apiRPS, apiBurst),
		osmapi.WithLogger(logger),
	)

	typ := osm.Type(objectType)

	// Fetch all ids concurrently; output preserves argument order.
	results := make([]json.RawMessage, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			result, err := fetch(gctx, client, typ, id)
			if err != nil {
				return fmt.Errorf("id %d: %w", id, err)
			}
			buf, err := json.Marshal(result)
			if err != nil {
				return fmt.Errorf("id %d: encode result: %w", id, err)
			}
			results[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("fetch failed", "error", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Println(string(r))
	}
}

// fetch runs one lookup according to the -mode flag.
func fetch(ctx context.Context, client *osmapi.Client, typ osm.Type, id int64) (any, error) {
	switch mode {
	case "object":
		return client.GetObject(ctx, typ, id)
	case "ways":
		return client.GetWaysUsingNode(ctx, id)
	case "relations":
		return client.GetRelationsReferringTo(ctx, typ, id)
	case "history":
		return client.GetHistory(ctx, typ, id)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// parseIDs converts the positional arguments to object ids.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("id %q is not an integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
