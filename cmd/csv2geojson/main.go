// Command csv2geojson converts a flat CSV parking reference file into a
// GeoJSON FeatureCollection written next to the input with a .geojson
// extension.
//
// Usage:
//
//	csv2geojson <file.csv>
//
// Rows missing uid, lat or lon are dropped with a logged line; the run
// still exits 0. Only usage errors and a missing input file are fatal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"geoconvert/internal/config"
	"geoconvert/internal/convert"
	"geoconvert/internal/geojson"
	"geoconvert/internal/logging"
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
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no csv file specified")
		os.Exit(2)
	}
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: no input file at '%s'\n", path)
		os.Exit(1)
	}

	logger := logging.NewRunLogger().With("input", path)

	fc, summary, err := convert.ConvertCSVFile(path, logger)
	if err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}

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
		"dropped", summary.Dropped,
		"errors", len(summary.Errors),
	)
	fmt.Println(summary.Line())
}
