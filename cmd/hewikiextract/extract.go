package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/temporal-IPA/hewiktparse/internal/config"
	"github.com/temporal-IPA/hewiktparse/internal/dump"
	"github.com/temporal-IPA/hewiktparse/internal/progress"
)

func newExtractCmd() *cobra.Command {
	var (
		out        string
		workers    int
		configPath string
		url        string
	)

	cmd := &cobra.Command{
		Use:   "extract [path]",
		Short: "Extract entries from a Hebrew Wiktionary dump",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := url
			if source == "" {
				if len(args) == 0 {
					return fmt.Errorf("extract: either a dump path or --url is required")
				}
				source = args[0]
			}

			if configPath != "" {
				c, err := config.Load(configPath)
				if err != nil {
					return err
				}
				config.Apply(c)
				if !cmd.Flags().Changed("workers") && c.Workers > 0 {
					workers = c.Workers
				}
			}

			r, err := dump.OpenSource(source)
			if err != nil {
				return fmt.Errorf("extract: opening %s: %w", source, err)
			}
			defer r.Close()

			reporter := progress.New(os.Stderr)
			var scanned int
			d := dump.Driver{
				Workers: workers,
				OnProgress: func(s, kept int) {
					scanned = s
					reporter.Report(s, kept)
				},
			}

			pages, err := d.Run(r)
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}
			reporter.Done(scanned, len(pages))

			data, err := json.MarshalIndent(pages, "", "  ")
			if err != nil {
				return fmt.Errorf("extract: encoding output: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("extract: writing %s: %w", out, err)
			}
			log.Printf("extract: wrote %d pages to %s", len(pages), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "pages.json", "output JSON path")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent page-assembly workers (0 = sequential)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config overriding canonicalization tables and worker count")
	cmd.Flags().StringVar(&url, "url", "", "HTTP(S) source instead of a local path")

	return cmd
}
