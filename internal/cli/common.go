package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xinfeng-tech/flutter-libs/internal/clock"
	"github.com/xinfeng-tech/flutter-libs/internal/config"
	"github.com/xinfeng-tech/flutter-libs/internal/engine"
	"github.com/xinfeng-tech/flutter-libs/internal/fsops"
	"github.com/xinfeng-tech/flutter-libs/internal/hash"
	"github.com/xinfeng-tech/flutter-libs/internal/logging"
	"github.com/xinfeng-tech/flutter-libs/internal/project"
	"github.com/xinfeng-tech/flutter-libs/internal/strategy"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	fs := fsops.NewOSFS()
	return engine.New(fs, hash.NewSHA256Hasher(fs), clock.RealClock{}, logging.GetLogger("engine"))
}

// session is the configuration of one command invocation, resolved up front.
type session struct {
	project  *project.Project
	settings engine.Settings
}

// loadSession resolves properties, the project manifest and the settings.
// When requireProject is false a missing manifest is tolerated as long as
// none was asked for explicitly.
func loadSession(requireProject bool) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	proj, err := loadProject(cfg.Project, requireProject)
	if err != nil {
		return nil, err
	}

	flags := strategy.Flags{
		SplitPerABI:    cfg.SplitPerABI,
		SupportArmeabi: cfg.SupportArmeabi,
	}
	if proj != nil {
		flags.Extension = proj.Manifest.SupportArmeabi
	}

	settings, err := engine.ResolveSettings(engine.SettingsInput{
		TargetPlatform: cfg.TargetPlatform,
		Flags:          flags,
	})
	if err != nil {
		return nil, err
	}

	return &session{project: proj, settings: settings}, nil
}

func loadProject(path string, required bool) (*project.Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	paths, err := config.ResolvePaths(path, cwd)
	if err != nil {
		if errors.Is(err, config.ErrProjectNotFound) && !required && path == "" {
			return nil, nil
		}
		return nil, err
	}

	return project.Load(paths.Project)
}

// variantSource picks where variant output trees come from: an explicit
// --output-dir, else the project manifest.
func (s *session) variantSource(outputDir, variant string) (engine.VariantSource, error) {
	if outputDir != "" {
		abs, err := filepath.Abs(outputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve output directory: %w", err)
		}
		if variant == "" {
			variant = "default"
		}
		return engine.StaticVariants{variant: abs}, nil
	}
	if s.project == nil {
		return nil, fmt.Errorf("%w: pass --project or --output-dir", config.ErrProjectNotFound)
	}
	return s.project, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
