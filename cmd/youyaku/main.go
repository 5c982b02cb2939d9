// Package main is the youyaku CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hyperjump/youyaku/internal/archive"
	"github.com/hyperjump/youyaku/internal/config"
	"github.com/hyperjump/youyaku/internal/embedding"
	"github.com/hyperjump/youyaku/internal/generate"
	"github.com/hyperjump/youyaku/internal/models"
	"github.com/hyperjump/youyaku/internal/pipeline"
	"github.com/hyperjump/youyaku/internal/report"
	"github.com/hyperjump/youyaku/internal/sample"
	"github.com/hyperjump/youyaku/internal/server"
	"github.com/hyperjump/youyaku/internal/service"
	"github.com/hyperjump/youyaku/internal/storage"
	"github.com/hyperjump/youyaku/internal/watcher"
	"github.com/hyperjump/youyaku/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/youyaku/config.yaml"

// loadConfig loads config from path. When path is the default, config.yaml in
// the current directory takes precedence so development runs pick up the
// project config. Returns the config and the path actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	// GEMINI_API_KEY and friends may live in a local .env during development.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "summarize":
		runSummarize()
	case "archive":
		runArchive()
	case "search":
		runSearch()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("youyaku version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// components holds everything the server and local commands share.
type components struct {
	Storage storage.Storage
	Archive *archive.Archive
	Service *service.Service

	embedder  embedding.Embedder
	generator generate.Generator
}

func (c *components) Close() {
	if g, ok := c.generator.(*generate.Gemini); ok {
		_ = g.Close()
	}
	if c.embedder != nil {
		_ = c.embedder.Close()
	}
	if c.Archive != nil {
		_ = c.Archive.Close()
	}
	if c.Storage != nil {
		_ = c.Storage.Close()
	}
}

func initializeComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*components, error) {
	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	ar, err := archive.Open(cfg.Storage.IndexPath)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to open summary archive: %w", err)
	}

	var embedder embedding.Embedder
	if cfg.Pipeline.ONNXModelPath != "" {
		onnx, onnxErr := embedding.NewONNXEmbedder(cfg.Pipeline.ONNXModelPath, cfg.Pipeline.Dimensions, cfg.Pipeline.MaxTokens)
		if onnxErr != nil {
			logger.Warn("ONNX embedder unavailable, using hash embedder", zap.Error(onnxErr))
			embedder = embedding.NewHashEmbedder(cfg.Pipeline.Dimensions)
		} else {
			embedder = onnx
		}
	} else {
		embedder = embedding.NewHashEmbedder(cfg.Pipeline.Dimensions)
	}

	var generator generate.Generator
	gemini, gemErr := generate.NewGemini(ctx, cfg.Pipeline.GeminiModel)
	if gemErr != nil {
		logger.Warn("abstractive generator unavailable, pipeline output will be extractive only", zap.Error(gemErr))
		generator = generate.Noop{}
	} else {
		generator = gemini
	}

	params := generate.Params{
		MaxLength:     cfg.Pipeline.MaxLength,
		MinLength:     cfg.Pipeline.MinLength,
		NumBeams:      cfg.Pipeline.NumBeams,
		LengthPenalty: cfg.Pipeline.LengthPenalty,
		EarlyStopping: true,
	}
	pl := pipeline.New(embedder, generator, cfg.Pipeline.TopK, params)

	reportOpts := report.Options{
		MonetaryWindow: cfg.Extraction.MonetaryWindow,
		PartyWindow:    cfg.Extraction.PartyWindow,
	}
	svc := service.New(store, ar, pl, reportOpts, logger)

	return &components{
		Storage:   store,
		Archive:   ar,
		Service:   svc,
		embedder:  embedder,
		generator: generator,
	}, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	ctx := context.Background()
	comps, err := initializeComponents(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer comps.Close()

	watchCtx, watchCancel := context.WithCancel(ctx)
	defer watchCancel()
	var watchSvc *watcher.Watcher
	if len(cfg.Watch.Directories) > 0 {
		watchSvc = watcher.New(cfg.Watch.Directories, func(path string) {
			if _, err := comps.Service.IngestFile(context.Background(), path); err != nil {
				logger.Warn("drop folder ingest failed", zap.String("path", path), zap.Error(err))
			}
		}, logger)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		if cfg.Watch.SyncOnStart {
			watchSvc.SyncExistingFiles()
		}
	}

	srv := server.NewServer(comps.Service, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	if watchSvc != nil {
		watchSvc.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
}

func runSummarize() {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	mode := fs.String("mode", "report", "summaries to generate: report, pipeline, or both")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || *debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	comps, err := initializeComponents(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize components: %v\n", err)
		os.Exit(1)
	}
	defer comps.Close()

	var resp *models.SummarizeResponse
	if fs.NArg() > 0 {
		resp, err = summarizeFile(ctx, comps, fs.Arg(0), models.SummarizeMode(*mode))
	} else {
		// No file: summarize the embedded demo case.
		resp, err = comps.Service.Summarize(ctx, sample.Title, sample.CaseText(), models.SummarizeMode(*mode))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Summarize failed: %v\n", err)
		os.Exit(1)
	}

	if resp.Report != "" {
		fmt.Println(resp.Report)
	}
	if resp.Summary != "" {
		fmt.Println("ABSTRACTIVE SUMMARY:")
		fmt.Println(resp.Summary)
	}
	fmt.Printf("\nCase %s stored with %d summaries (%d ms)\n", resp.CaseID, len(resp.SummaryIDs), resp.TookMS)
}

func summarizeFile(ctx context.Context, comps *components, path string, mode models.SummarizeMode) (*models.SummarizeResponse, error) {
	if mode == models.ModeReport {
		return comps.Service.IngestFile(ctx, path)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return comps.Service.Summarize(ctx, filepath.Base(path), string(text), mode)
}

func runArchive() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: youyaku archive <list|get|search> ...")
		os.Exit(1)
	}
	action := os.Args[2]

	fs := flag.NewFlagSet("archive", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 20, "number of summaries to list")
	offset := fs.Int("offset", 0, "list offset")
	_ = fs.Parse(os.Args[3:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	comps, err := initializeComponents(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize components: %v\n", err)
		os.Exit(1)
	}
	defer comps.Close()

	switch action {
	case "list":
		sums, err := comps.Service.ListSummaries(ctx, *offset, *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "List failed: %v\n", err)
			os.Exit(1)
		}
		if len(sums) == 0 {
			fmt.Println("No stored summaries.")
			return
		}
		for _, sum := range sums {
			fmt.Printf("%s  %-8s  case %s  %s\n", sum.ID, sum.Kind, sum.CaseID, sum.CreatedAt.Format(time.RFC3339))
		}
	case "get":
		if fs.NArg() < 1 {
			fmt.Println("Usage: youyaku archive get <summary-id>")
			os.Exit(1)
		}
		sum, err := comps.Service.GetSummary(ctx, fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Get failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(sum.Content)
	case "search":
		if fs.NArg() < 1 {
			fmt.Println("Usage: youyaku archive search <query>")
			os.Exit(1)
		}
		query := strings.TrimSpace(strings.Join(fs.Args(), " "))
		resp, err := comps.Service.Search(ctx, &models.SearchQuery{Query: query, Limit: *limit})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		printSearchResults(resp)
	default:
		fmt.Printf("Unknown archive action: %s\n", action)
		os.Exit(1)
	}
}

func printSearchResults(resp *models.SearchResponse) {
	if resp.Total == 0 {
		fmt.Println("No matching summaries.")
		return
	}
	for i, hit := range resp.Results {
		fmt.Printf("%d. [%s] summary %s (case %s, score %.3f)\n", i+1, hit.Kind, hit.SummaryID, hit.CaseID, hit.Score)
		if hit.Snippet != "" {
			fmt.Printf("   %s\n", hit.Snippet)
		}
	}
	fmt.Printf("\n%d results in %d ms\n", resp.Total, resp.TookMS)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 10, "number of results")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: youyaku search [flags] <query>")
		os.Exit(1)
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	comps, err := initializeComponents(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize components: %v\n", err)
		os.Exit(1)
	}
	defer comps.Close()

	resp, err := comps.Service.Search(ctx, &models.SearchQuery{Query: query, Limit: *limit})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	printSearchResults(resp)
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	comps, err := initializeComponents(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize components: %v\n", err)
		os.Exit(1)
	}
	defer comps.Close()

	status, err := comps.Service.Status(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cases:             %v\n", status["cases"])
	fmt.Printf("Summaries:         %v\n", status["summaries"])
	fmt.Printf("Indexed summaries: %v\n", status["indexed_summaries"])
	fmt.Printf("Database:          %s\n", cfg.Storage.DatabasePath)
	fmt.Printf("Archive index:     %s\n", cfg.Storage.IndexPath)
}

func printUsage() {
	fmt.Println(`youyaku - Commercial-legal case summarizer

Usage:
  youyaku server [flags]              Start the HTTP server
  youyaku summarize [flags] [file]    Summarize a case file (or the built-in demo case)
  youyaku archive <list|get|search>   Inspect stored summaries
  youyaku search [flags] <query>      Search archived summaries
  youyaku status [flags]              Show storage and archive status
  youyaku version                     Show version

Flags (per command):
  -config <path>   Config file (default /usr/local/etc/youyaku/config.yaml,
                   or ./config.yaml when present)
  -mode <mode>     summarize: report, pipeline, or both (default report)
  -limit <n>       search: number of results (default 10)
  -debug           Verbose logging`)
}
