package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fir/internal/config"
	"github.com/vvka-141/fir/internal/files/filesystem"
	"github.com/vvka-141/fir/internal/logging"
	"github.com/vvka-141/fir/internal/report"
	"github.com/vvka-141/fir/internal/services"
	"github.com/vvka-141/fir/internal/tui"
	"github.com/vvka-141/fir/pkg/fir"
)

// searchOptions holds the root command's flag values.
type searchOptions struct {
	extensions []string
	mode       string
	ignoreFile string
	ignore     []string
	format     string
	unusedOnly bool
	configPath string
}

var searchFlags searchOptions

func runSearch(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	req, opts, err := buildSearchPlan(workDir, args, searchFlags)
	if err != nil {
		return err
	}

	interactive := tui.IsInteractive()
	opts.Color = interactive
	opts.Summary = !interactive

	logger.Verbose("Target: %s, root: %s, mode: %s, ignore file: %s",
		req.Target, req.Root, req.Mode, req.IgnoreFile)

	svc := services.NewSearchService(filesystem.NewOSFileSystem(), logger)

	var result *fir.ScanResult
	message := fmt.Sprintf("Searching %s in %s", req.Target, displayPath(workDir, req.Root))
	err = tui.RunWithSpinner(message, func() (string, error) {
		r, err := svc.Search(req)
		if err != nil {
			return "", err
		}
		result = r
		if opts.UnusedOnly {
			return report.Summary(report.UnusedOnly(r)), nil
		}
		return report.Summary(r), nil
	})
	if err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), result, opts)
}

// buildSearchPlan resolves the request and render options.
// Precedence: flags > FIR_* environment > config file > defaults.
func buildSearchPlan(workDir string, args []string, flags searchOptions) (fir.ScanRequest, report.Options, error) {
	if err := config.LoadDotEnv(workDir); err != nil {
		return fir.ScanRequest{}, report.Options{}, fmt.Errorf("%w: %v", fir.ErrInvalidConfig, err)
	}

	cfg, err := loadProjectConfig(workDir, flags.configPath)
	if err != nil {
		return fir.ScanRequest{}, report.Options{}, err
	}
	cfg.ApplyEnv()

	target, err := fir.ParseSearchTarget(args[0])
	if err != nil {
		return fir.ScanRequest{}, report.Options{}, err
	}

	root := fir.DefaultSearchRoot
	switch {
	case len(args) > 1:
		root = args[1]
	case cfg.Root != "":
		root = cfg.Root
	}

	mode, err := fir.ParseMatchMode(firstNonEmpty(flags.mode, cfg.Mode))
	if err != nil {
		return fir.ScanRequest{}, report.Options{}, err
	}

	format, err := report.ParseFormat(firstNonEmpty(flags.format, cfg.Format))
	if err != nil {
		return fir.ScanRequest{}, report.Options{}, err
	}

	ignoreFile := firstNonEmpty(flags.ignoreFile, cfg.IgnoreFile, fir.DefaultIgnoreFile)

	extensions := flags.extensions
	if len(extensions) == 0 {
		extensions = cfg.ExtensionsFor(target.Extension)
	}

	req := fir.ScanRequest{
		Target:      target,
		Root:        resolvePath(workDir, root),
		IgnoreFile:  resolvePath(workDir, ignoreFile),
		ExtraIgnore: append(append([]string(nil), cfg.Ignore...), flags.ignore...),
		Extensions:  extensions,
		Mode:        mode,
	}

	opts := report.Options{
		Format:     format,
		UnusedOnly: flags.unusedOnly,
	}

	return req, opts, nil
}

// loadProjectConfig loads the config file.
// Returns an empty config if the default file does not exist (not an error);
// an explicit --config path must exist.
func loadProjectConfig(workDir, configPath string) (*config.ProjectConfig, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(resolvePath(workDir, configPath))
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s: %v", fir.ErrInvalidConfig, configPath, err)
		}
		return cfg, err
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.FileName, err)
	}
	return cfg, nil
}

func resolvePath(workDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(workDir, p)
}

// displayPath shortens p relative to workDir when it lies inside it.
func displayPath(workDir, p string) string {
	rel, err := filepath.Rel(workDir, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
