package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/server"
)

var (
	serveAddr     string
	serveConfig   string
	serveBrowser  bool
	serveLeniency int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis, detection, gap, roadmap, and report endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveBrowser, "browser", false, "Use a headless browser for JavaScript-heavy pages")
	serveCmd.Flags().IntVar(&serveLeniency, "leniency", 0, "Tolerance band for role recommendations (0 = default)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := serverConfig()
	if serveConfig != "" {
		fileCfg, err := loadServeConfig(serveConfig, &cfg)
		if err != nil {
			return err
		}
		if !serveBrowser {
			cfg.UseBrowser = fileCfg.UseBrowser
		}
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}

// serverConfig builds the server config from flags and environment. The
// Gemini key is optional; without it roadmaps use the deterministic
// generator.
func serverConfig() server.Config {
	return server.Config{
		Addr:         serveAddr,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		UseBrowser:   serveBrowser,
		RoleLeniency: serveLeniency,
	}
}

// loadServeConfig fills empty server config fields from a JSON config file.
// Flags and environment always win over file values.
func loadServeConfig(path string, cfg *server.Config) (*config.Config, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := fileCfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		cfg.Addr = fileCfg.Addr
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fileCfg.DatabaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = fileCfg.APIKey
	}
	if cfg.RoleLeniency == 0 {
		cfg.RoleLeniency = fileCfg.RoleLeniency
	}
	return fileCfg, nil
}
