package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/internal/pitch"
	"github.com/spf13/cobra"
)

var pitchCmd = &cobra.Command{
	Use:   "pitch <idea>",
	Short: "Generate a pitch script and logo for one idea",
	Long:  "Generate a pitch script and logo for one idea, print the parsed script and optionally save the logo as PNG.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPitch,
}

var pitchLogoOut string

func init() {
	pitchCmd.Flags().StringVarP(&pitchLogoOut, "logo-out", "o", "", "Write the generated logo PNG to this path")
	rootCmd.AddCommand(pitchCmd)
}

func runPitch(cmd *cobra.Command, args []string) error {
	idea := strings.TrimSpace(strings.Join(args, " "))
	if idea == "" {
		return fmt.Errorf("idea must not be empty")
	}

	container, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := container.Generator.Generate(ctx, idea)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sections := pitch.Parse(result.PitchText)
	printSummary(out, pitch.Headings(sections))
	printSections(out, sections)

	if pitchLogoOut != "" {
		if err := writeLogo(pitchLogoOut, result); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nLogo saved to %s\n", pitchLogoOut)
	}

	return nil
}

func printSummary(w io.Writer, headings []string) {
	if len(headings) == 0 {
		return
	}
	fmt.Fprintf(w, "Seções: %s\n", strings.Join(headings, " | "))
}

func printSections(w io.Writer, sections []domain.PitchSection) {
	for _, s := range sections {
		if s.IsHeading() {
			fmt.Fprintf(w, "\n== %s ==\n%s\n", s.Title, s.Body)
			continue
		}
		fmt.Fprintln(w, s.Text)
	}
}

func writeLogo(path string, result *domain.GenerationResult) error {
	data, err := base64.StdEncoding.DecodeString(result.LogoBase64())
	if err != nil {
		return fmt.Errorf("failed to decode logo: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write logo: %w", err)
	}
	return nil
}
