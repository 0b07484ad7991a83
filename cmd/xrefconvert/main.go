// Command xrefconvert builds the cross-reference datasets served by the API
// from an OpenBible.info cross_references.txt export.
//
// Usage:
//
//	xrefconvert cross_references.txt [--out data/cross-references.json]
//	    [--popular-out data/cross-references-popular.json] [--limit 8] [--indent]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/gospelpath-backend/internal/crossref"
	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
)

// CLI is the xrefconvert command line.
type CLI struct {
	Input      string `arg:"" help:"OpenBible.info cross_references.txt (TSV)." type:"existingfile"`
	Out        string `help:"Full dataset output path." default:"data/cross-references.json"`
	PopularOut string `help:"Popular-verse dataset output path; empty to skip." default:"data/cross-references-popular.json"`
	Limit      int    `help:"References kept per verse." default:"8"`
	Indent     bool   `help:"Indent JSON output."`
}

// Run converts the input and writes both datasets.
func (c *CLI) Run(logger *slog.Logger) error {
	f, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return c.convert(f, logger)
}

func (c *CLI) convert(r io.Reader, logger *slog.Logger) error {
	conv := crossref.NewConverter(scripture.DefaultParser(), c.Limit)

	full, stats, err := conv.Convert(r)
	if err != nil {
		return err
	}
	logger.Info("converted cross-references",
		slog.Int("links", stats.Links),
		slog.Int("skipped", stats.Skipped),
		slog.Int("verses", stats.Verses),
	)

	if err := crossref.WriteDataset(c.Out, full, c.Indent); err != nil {
		return err
	}
	logger.Info("wrote dataset", slog.String("path", c.Out), slog.Int("verses", len(full)))

	if c.PopularOut == "" {
		return nil
	}

	popular := crossref.PopularSubset(full, crossref.PopularKeys)
	if err := crossref.WriteDataset(c.PopularOut, popular, c.Indent); err != nil {
		return err
	}
	logger.Info("wrote dataset", slog.String("path", c.PopularOut), slog.Int("verses", len(popular)))
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("xrefconvert"),
		kong.Description("Build cross-reference datasets from an OpenBible.info export."),
		kong.UsageOnError(),
		kong.Bind(logger),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
