package cli

import (
	"fmt"
	"os"

	"github.com/uar-project/uar/pkg/color"
	"github.com/uar-project/uar/pkg/config"
	"github.com/uar-project/uar/pkg/logging"
)

// loadConfig reads the config from the current directory and applies
// it to the logger and color system. Missing config means defaults.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		fmtErr("cannot get current directory: %v", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		fmtErr("load config: %v", err)
		os.Exit(1)
	}

	logging.SetGlobal(logging.NewLogger(logging.ParseLevel(cfg.Logging.Level)))
	if !cfg.Output.Color {
		color.Disable()
	}

	return cfg
}

func fmtErr(format string, args ...any) {
	prefix := "uar: "
	if color.Enabled() {
		prefix = color.Error("uar:") + " "
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}
