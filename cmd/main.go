package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"kitti-paths/controller"
	"kitti-paths/utils"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "", "optional path to kitti.yaml")
	imagesRoot := flag.String("images-root", "", "root searched for sequence folders (overrides config)")
	datasetRoot := flag.String("dataset-root", "", "root the output paths are built on (defaults to images root)")
	outDir := flag.String("out", "", "output directory (default: kitti_<timestamp>)")
	level := flag.String("level", "", "log level: debug, info, warn, error (overrides config)")
	logFile := flag.String("log", "", "optional log file path (stdout is always included)")
	flag.Parse()

	// ── Config ───────────────────────────────────────────────────────
	cfg := utils.DefaultDatasetConfig()
	var cfgErr error
	if *configPath != "" {
		var loaded *utils.DatasetConfig
		if loaded, cfgErr = utils.LoadDatasetConfig(*configPath); cfgErr == nil {
			cfg = loaded
		}
	}
	if cfgErr == nil {
		if *imagesRoot != "" {
			cfg.Dataset.ImagesRoot = *imagesRoot
		}
		if *datasetRoot != "" {
			cfg.Dataset.DatasetRoot = *datasetRoot
		}
		if *outDir != "" {
			cfg.Output.Dir = *outDir
		}
		if *level != "" {
			cfg.Log.Level = *level
		}
		if *logFile != "" {
			cfg.Log.File = *logFile
		}
	}

	// ── Logger ───────────────────────────────────────────────────────
	logger := utils.InitLogger(utils.ParseLevel(cfg.Log.Level), cfg.Log.File)
	defer logger.Close()

	if cfgErr != nil {
		utils.L().Fatal("load dataset config: %v", cfgErr)
	}
	if cfg.Dataset.ImagesRoot == "" {
		utils.L().Fatal("no images root: pass -images-root or set dataset.images_root")
	}
	if err := cfg.AbsRoots(); err != nil {
		utils.L().Fatal("dataset roots: %v", err)
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = utils.SessionName("kitti")
	}
	if abs, err := filepath.Abs(cfg.Output.Dir); err == nil {
		cfg.Output.Dir = abs
	}

	utils.L().Info("images root:  %s", cfg.Dataset.ImagesRoot)
	utils.L().Info("dataset root: %s", cfg.Dataset.DatasetRoot)

	// ── Resolve & export ─────────────────────────────────────────────
	rc := controller.NewResolveController(cfg)
	params, err := rc.Resolve()
	if err != nil {
		utils.L().Fatal("resolve: %v", err)
	}
	for _, seq := range params.Sequences {
		utils.L().Info("  %-50s %d calib file(s)", seq, len(params.CalibFiles(seq)))
	}
	if err := rc.Export(); err != nil {
		utils.L().Fatal("%v", err)
	}

	fmt.Fprintf(os.Stdout, "\n✓ %d sequence(s) resolved. Outputs at: %s\n", len(params.Sequences), cfg.Output.Dir)
}
