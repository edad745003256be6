// dbfetch downloads BLAST database archives and pushes them to cloud
// drive storage. It is a standalone one-shot tool, not wired into the
// web API; any failure aborts the run.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"ednalyzer/internal/config"
	"ednalyzer/internal/transfer"
)

var (
	sourceURL    string
	outputDir    string
	manifestPath string
	accessToken  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dbfetch",
		Short: "Download BLAST database archives and upload them to drive storage",
		Long: `dbfetch downloads database archives over HTTP into a local directory
and uploads each one to cloud drive storage. Sources come from --url or
from a YAML manifest listing multiple archives.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&sourceURL, "url", "", "database archive URL (overrides the manifest)")
	rootCmd.Flags().StringVar(&outputDir, "out", "blast_databases", "local output directory")
	rootCmd.Flags().StringVar(&manifestPath, "manifest", "dbfetch.yaml", "YAML manifest listing source URLs")
	rootCmd.Flags().StringVar(&accessToken, "token", os.Getenv("DRIVE_ACCESS_TOKEN"), "drive OAuth2 access token")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	urls, err := resolveSources()
	if err != nil {
		return err
	}

	downloader := transfer.NewDownloader(nil)
	uploader := transfer.NewDriveUploader(transfer.TokenCredentials{AccessToken: accessToken})

	for _, u := range urls {
		dest, err := downloader.Download(cmd.Context(), u, outputDir)
		if err != nil {
			return err
		}
		log.Printf("downloaded %s", dest)

		if err := uploader.Upload(cmd.Context(), dest); err != nil {
			return err
		}
		log.Printf("uploaded %s to drive", dest)
	}

	return nil
}

// resolveSources returns the archive URLs from --url or the manifest.
func resolveSources() ([]string, error) {
	if sourceURL != "" {
		return []string{sourceURL}, nil
	}

	m, err := config.LoadManifest(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", manifestPath, err)
	}
	if m == nil || len(m.Sources) == 0 {
		return nil, errors.New("no source URLs: pass --url or list sources in the manifest")
	}
	if m.OutputDir != "" && outputDir == "blast_databases" {
		outputDir = m.OutputDir
	}
	return m.Sources, nil
}
