package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/storegen"
	"github.com/fwojciec/storegen/anthropic"
	"github.com/fwojciec/storegen/cloudflare"
	"github.com/fwojciec/storegen/gemini"
	"github.com/fwojciec/storegen/goquery"
	storehttp "github.com/fwojciec/storegen/http"
	"github.com/fwojciec/storegen/pipeline"
	"github.com/fwojciec/storegen/rod"
	storeslog "github.com/fwojciec/storegen/slog"
	"github.com/fwojciec/storegen/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	StoreService  storegen.StoreService
	DomainService storegen.DomainService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// API keys may live in a local .env file.
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("storegen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'storegen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set STOREGEN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.StoreService = sqlite.NewStoreService(m.DB)
	m.DomainService = sqlite.NewDomainService(m.DB)
	deps.DB = m.DB
	deps.Stores = m.StoreService
	deps.Domains = m.DomainService

	// Wire command-specific dependencies based on command
	if cmd == "generate" || (cmd == "create" && !cli.Create.NoGenerate) {
		var fetcher storegen.Fetcher
		if cli.Browser {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = storehttp.NewFetcher()
		}
		fetcher = storeslog.NewLoggingFetcher(fetcher, logger)
		defer fetcher.Close()

		completer, err := newCompleter(ctx, logger)
		if err != nil {
			return err
		}
		if completer == nil {
			fmt.Fprintln(stderr, "ANTHROPIC_API_KEY or GEMINI_API_KEY not set; generation will fail with an error status")
		}

		deps.Generator = &pipeline.Generator{
			Stores:    m.StoreService,
			Fetcher:   fetcher,
			Images:    goquery.NewImageExtractor(),
			Reviews:   goquery.NewReviewExtractor(),
			Completer: completer,
			Logger:    logger,
		}
	}

	if cmd == "connect" || cmd == "check" || cmd == "disconnect" {
		var provider storegen.HostnameProvider
		token := os.Getenv("CLOUDFLARE_API_TOKEN")
		zoneID := os.Getenv("CLOUDFLARE_ZONE_ID")
		if token != "" && zoneID != "" {
			provider = cloudflare.NewClient(token, zoneID)
		} else {
			fmt.Fprintln(stderr, "CLOUDFLARE_API_TOKEN or CLOUDFLARE_ZONE_ID not set; simulating the domain connection")
		}

		origin := os.Getenv("STOREGEN_FALLBACK_ORIGIN")
		if origin == "" {
			origin = defaultFallbackOrigin
		}

		deps.Connector = &cloudflare.Connector{
			Domains:        m.DomainService,
			Stores:         m.StoreService,
			Provider:       provider,
			FallbackOrigin: origin,
		}
	}

	return kongCtx.Run(deps)
}

// defaultFallbackOrigin is the CNAME target customers point their domain
// at. Override with STOREGEN_FALLBACK_ORIGIN.
const defaultFallbackOrigin = "stores.storegen.app"

// newCompleter picks the LLM provider from the environment. Anthropic is
// preferred; Gemini is the fallback. Returns nil when neither key is set.
func newCompleter(ctx context.Context, logger *slog.Logger) (storegen.Completer, error) {
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		return storeslog.NewLoggingCompleter(anthropic.NewCompleter(apiKey), logger), nil
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return storeslog.NewLoggingCompleter(gemini.NewCompleter(client), logger), nil
	}

	return nil, nil
}

func defaultDBPath() string {
	if path := os.Getenv("STOREGEN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "storegen.db"
	}
	dir := filepath.Join(home, ".storegen")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "storegen.db")
}
