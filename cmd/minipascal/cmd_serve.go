package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/djasserdz/mini-pascal-scanner/ui"
)

type serveConfig struct {
	Addr string `yaml:"addr"`
	// Source roots batch-analyzed as soon as the server starts.
	Roots []string `yaml:"roots"`
}

func newServeCmd() *cobra.Command {
	var addr string
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var roots []string
			if configFile != "" {
				cfg, err := loadServeConfig(configFile)
				if err != nil {
					return err
				}
				if cfg.Addr != "" && !cmd.Flags().Changed("addr") {
					addr = cfg.Addr
				}
				roots = cfg.Roots
			}

			server := ui.NewServer()
			for _, root := range roots {
				id := server.SubmitBatch(root)
				fmt.Printf("Queued batch analysis of %s (job %s)\n", root, id)
			}

			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8000", "address to listen on")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file")

	return cmd
}

func loadServeConfig(path string) (*serveConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg serveConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
