// newsreel-segment runs the transcript segmenter offline: it reads a
// local SRT file, groups its entries into bounded-duration chunks, and
// writes the chunked track back out as SRT.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"newsreel/internal/config"
	"newsreel/srt"

	"github.com/spf13/cobra"
)

var (
	configPath string
	maxSpan    float64
	output     string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "newsreel-segment <input.srt>",
	Short: "Segment an SRT transcript into bounded-duration chunks",
	Long: `Parses an SRT subtitle file, merges consecutive entries into chunks no
longer than the configured span, and writes the chunked track as SRT
with contiguous numbering. Malformed blocks are skipped and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	defaults := config.Default()

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().Float64Var(&maxSpan, "max-span", defaults.MaxChunkSpanSec, "maximum chunk span in seconds")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <input>.chunks.srt)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report skipped blocks")
}

func runSegment(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	span := maxSpan
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("max-span") {
			span = cfg.MaxChunkSpanSec
		}
	}
	if span <= 0 {
		return fmt.Errorf("max-span must be > 0")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	track, err := srt.ParseTrack(string(raw))
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}
	if verbose {
		for _, skipped := range track.Skipped {
			log.Printf("skipped: %v", skipped)
		}
	}

	chunks, err := srt.GroupEntries(track.Entries, span)
	if err != nil {
		return err
	}

	outPath := output
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, ".srt") + ".chunks.srt"
	}
	if err := os.WriteFile(outPath, []byte(srt.RenderChunks(chunks)), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("%d entries -> %d chunks (max span %.0fs): %s\n",
		len(track.Entries), len(chunks), span, outPath)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
