package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alimgiray/gfolio/internal/render"
	"github.com/alimgiray/gfolio/internal/repositories"
	"github.com/alimgiray/gfolio/internal/services"
	"github.com/alimgiray/gfolio/pkg/config"
	"github.com/alimgiray/gfolio/pkg/logger"
	"github.com/alimgiray/gfolio/web"
)

type renderOptions struct {
	output   string
	export   string
	username string
	apiURL   string
	store    string
	debug    bool
}

var opts renderOptions

// RootCmd renders the portfolio page once and writes it to disk
var RootCmd = &cobra.Command{
	Use:   "gfolio-render [flags]",
	Short: "Render the portfolio page to a static HTML file",
	Long: `Fetches the GitHub profile and repositories (or reuses a fresh cached
snapshot), renders the portfolio page with every counter at its final value
and writes it to --output. With --export the snapshot is also written as a
spreadsheet.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if opts.debug {
			logger.GetLogger().SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), opts)
	},
}

// Execute runs RootCmd and exits non-zero on failure
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.WithError(err).Error("error executing command")
		os.Exit(1)
	}
}

func init() {
	logger.Init()
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	RootCmd.Flags().StringVarP(&opts.output, "output", "o", "index.html", "file to write the page to (- for stdout)")
	RootCmd.Flags().StringVarP(&opts.export, "export", "x", "", "also write the snapshot as an .xlsx file")
	RootCmd.Flags().StringVarP(&opts.username, "username", "u", cfg.GitHub.Username, "GitHub username to render")
	RootCmd.Flags().StringVar(&opts.apiURL, "api-url", cfg.GitHub.APIURL, "GitHub API base URL")
	RootCmd.Flags().StringVarP(&opts.store, "store", "s", cfg.Store.Driver, "snapshot store: sqlite, redis or memory")
	RootCmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
}

func run(ctx context.Context, opts renderOptions) error {
	cfg := config.AppConfig

	storeCfg := cfg.Store
	storeCfg.Driver = opts.store
	store, err := repositories.OpenStore(ctx, storeCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	github, err := services.NewGitHubService(opts.apiURL, cfg.GitHub.RequestTimeout)
	if err != nil {
		return err
	}
	portfolio := services.NewPortfolioService(opts.username, github, services.NewCacheService(store))

	out, closeOut, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOut()

	result, err := renderPage(ctx, portfolio, out)
	if err != nil {
		return err
	}

	entry := logger.WithFields(logrus.Fields{
		"output":     opts.output,
		"state":      result.Final,
		"from_cache": result.FromCache(),
	})
	if result.Err != nil {
		entry.WithError(result.Err).Warn("Rendered fallback page")
	} else {
		entry.Info("Rendered portfolio page")
	}

	if opts.export != "" && result.Snapshot != nil {
		n, err := writeExport(result, opts.export)
		if err != nil {
			return err
		}
		logger.WithField("path", opts.export).Infof("Wrote %s spreadsheet", humanize.Bytes(uint64(n)))
	}

	return nil
}

// renderPage loads the portfolio onto a Page and executes the index template
func renderPage(ctx context.Context, portfolio *services.PortfolioService, w io.Writer) (*services.LoadResult, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	page := render.NewPage()
	result := portfolio.Load(ctx, page, render.FinalFrameAnimator{})

	data := map[string]interface{}{
		"Title":    "Portfolio",
		"Username": portfolio.Username(),
		"Page":     page,
		"Live":     false,
	}
	if err := tmpl.ExecuteTemplate(w, "index", data); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return result, nil
}

func writeExport(result *services.LoadResult, path string) (int, error) {
	data, err := services.NewExportService().Export(result.Snapshot)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return len(data), nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
