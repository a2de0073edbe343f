// Command xlsx2geojson converts a parking reference workbook into a GeoJSON
// FeatureCollection written next to the input with a .geojson extension.
//
// Usage:
//
//	xlsx2geojson <source_uid> <source_group>
//
// The workbook is resolved to <SOURCES_DIR>/<source_group>/<source_uid>.xlsx.
// Known source groups: parking-sites, parking-spots. Rows that fail
// validation are collected and reported; they never abort the run.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"geoconvert/internal/config"
	"geoconvert/internal/convert"
	"geoconvert/internal/geojson"
	"geoconvert/internal/logging"
	"geoconvert/internal/schema"
	"geoconvert/internal/xlsxfile"
)

func main() {
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	args := os.Args[1:]
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: xlsx2geojson <source_uid> <source_group>")
		fmt.Fprintln(os.Stderr, "source_group is one of: parking-sites, parking-spots")
		os.Exit(2)
	}
	sourceUID, sourceGroup := args[0], args[1]

	profile, ok := schema.ProfileFor(sourceGroup)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown source_group '%s' (use parking-sites or parking-spots)\n", sourceGroup)
		os.Exit(2)
	}

	path := filepath.Join(cfg.Sources.Dir, sourceGroup, sourceUID+".xlsx")
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: please add an Excel file with name '%s'\n", path)
		os.Exit(1)
	}

	logger := logging.NewRunLogger().With("source_uid", sourceUID, "source_group", sourceGroup)

	rows, err := xlsxfile.ReadFirstSheet(path)
	if err != nil {
		logger.Error("reading workbook failed", "error", err)
		os.Exit(1)
	}

	fc, summary := convert.ConvertRows(rows, profile, sourceUID, nil, logger)

	outPath := geojson.OutputPath(path)
	if err := geojson.Write(outPath, fc); err != nil {
		logger.Error("writing output failed", "path", outPath, "error", err)
		os.Exit(1)
	}

	for _, importErr := range summary.Errors {
		logger.Warn("import error", "record_uid", importErr.RecordUID, "message", importErr.Message)
	}
	logger.Info("conversion finished",
		"output", outPath,
		"features", summary.Features,
		"errors", len(summary.Errors),
	)
	fmt.Println(summary.Line())
}
