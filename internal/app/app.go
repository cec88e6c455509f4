// Package app wires together the service packages (internal/discovery,
// internal/locator, internal/model, internal/ordering, internal/lint,
// internal/generator, internal/format, internal/cache, internal/pipeline)
// into the handful of top-level operations internal/cli's commands invoke.
// It exists as its own package, separate from internal/cli, because
// internal/ordering depends on internal/config for its Config type: if
// internal/cli imported internal/ordering directly, and internal/ordering
// (transitively, via internal/config) ever needed anything back from
// internal/cli, the import graph would cycle. Routing orchestration
// through internal/app keeps internal/cli limited to flag parsing and
// argument validation, matching its own doc comment's description of
// itself as a thin layer that "delegates to the appropriate service
// packages for actual functionality."
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sdlcforge/makefwd/internal/cache"
	"github.com/sdlcforge/makefwd/internal/config"
	"github.com/sdlcforge/makefwd/internal/discovery"
	"github.com/sdlcforge/makefwd/internal/format"
	"github.com/sdlcforge/makefwd/internal/generator"
	"github.com/sdlcforge/makefwd/internal/lint"
	"github.com/sdlcforge/makefwd/internal/locator"
	"github.com/sdlcforge/makefwd/internal/model"
	"github.com/sdlcforge/makefwd/internal/ordering"
	"github.com/sdlcforge/makefwd/internal/pipeline"
)

// cacheFileName is the name of the discovery cache written under Root,
// mirroring the teacher's convention of keeping generated bookkeeping
// files alongside the Makefile they describe.
const cacheFileName = ".makefwd-cache.json"

// parseMode maps a Config.Mode string to a pipeline.Mode.
func parseMode(mode string) (pipeline.Mode, error) {
	switch mode {
	case "", "streaming":
		return pipeline.ModeStreaming, nil
	case "buffered":
		return pipeline.ModeBuffered, nil
	case "balanced":
		return pipeline.ModeBalanced, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (supported: streaming, buffered, balanced)", mode)
	}
}

// outputPath resolves the Makefile that forwarding rules are written into.
func outputPath(cfg *config.Config) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	return filepath.Join(cfg.Root, "Makefile")
}

// discoverModel runs locator+discovery over cfg.Root and builds the ordered
// ForwardingModel, applying the configured cache if any.
func discoverModel(cfg *config.Config) (*model.ForwardingModel, error) {
	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	priority := locator.NewPriorityTable(cfg.MakefilePriority...)
	nested := locator.NewNestedLocator(priority)

	var c *cache.Cache
	if cfg.Root != "" {
		loaded, err := cache.Open(filepath.Join(cfg.Root, cacheFileName))
		if err == nil {
			c = loaded
		}
	}

	svc := discovery.NewService(discovery.NewDefaultExecutor(), nested, mode, cfg.Verbose, c).
		WithMakeExecutable(cfg.MakeExecutable)
	dirs, err := svc.Discover(cfg.Root)
	if err != nil {
		return nil, err
	}

	dirs = filterExcluded(dirs, cfg.ExcludeDirs)

	fm := model.NewBuilder().Build(dirs)

	if err := ordering.NewService(cfg).ApplyOrdering(fm); err != nil {
		return nil, err
	}

	if c != nil {
		_ = c.Save()
	}

	return fm, nil
}

// filterExcluded drops directories whose basename is listed in excluded.
func filterExcluded(dirs []model.Directory, excluded []string) []model.Directory {
	if len(excluded) == 0 {
		return dirs
	}
	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		skip[name] = true
	}
	kept := dirs[:0]
	for _, d := range dirs {
		if skip[filepath.Base(d.Makefile.ExecPath)] {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

// Remove deletes a previously generated forwarding block from cfg's
// output Makefile.
func Remove(cfg *config.Config) error {
	return generator.Remove(outputPath(cfg))
}

// Report builds the ForwardingModel for cfg and renders it to w in the
// configured format, for --list.
func Report(cfg *config.Config, w io.Writer) error {
	fm, err := discoverModel(cfg)
	if err != nil {
		return err
	}

	if cfg.Lint {
		applyLint(cfg, fm)
	}

	formatter, err := format.NewFormatter(cfg.Format, &format.FormatterConfig{UseColor: cfg.UseColor})
	if err != nil {
		return err
	}
	return formatter.Render(fm, w)
}

// Lint builds the ForwardingModel for cfg, runs the collision checks, and
// writes any warnings to w. It returns an error if unresolved
// SeverityError warnings remain after an optional --fix pass.
func Lint(cfg *config.Config, w io.Writer) error {
	fm, err := discoverModel(cfg)
	if err != nil {
		return err
	}

	warnings := applyLint(cfg, fm)

	for _, warn := range warnings {
		fmt.Fprintf(w, "%s: %s: %s\n", warn.Severity, warn.Check, warn.Message)
	}

	for _, warn := range warnings {
		if warn.Severity == lint.SeverityError {
			return fmt.Errorf("%d target collision(s) found; rerun with --fix to resolve", countErrors(warnings))
		}
	}
	return nil
}

func countErrors(warnings []lint.Warning) int {
	n := 0
	for _, w := range warnings {
		if w.Severity == lint.SeverityError {
			n++
		}
	}
	return n
}

// applyLint runs every registered check against fm, applying
// lint.PrefixFixer in place (and rebuilding fm's collisions) when cfg.Fix
// is set. It returns the warnings remaining after any fix.
func applyLint(cfg *config.Config, fm *model.ForwardingModel) []lint.Warning {
	if cfg.Fix {
		fixed, _ := lint.PrefixFixer{}.Apply(fm)
		*fm = *fixed
	}
	return lint.Run(fm)
}

// Generate builds the ForwardingModel for cfg and splices its forwarding
// rules into cfg's output Makefile.
func Generate(cfg *config.Config) error {
	fm, err := discoverModel(cfg)
	if err != nil {
		return err
	}

	if cfg.Fix {
		fixed, _ := lint.PrefixFixer{}.Apply(fm)
		fm = fixed
	}

	if len(fm.Collisions) > 0 && !cfg.Fix {
		return fmt.Errorf("%d target name collision(s) found; rerun with --lint for details or --fix to resolve", len(fm.Collisions))
	}

	return generator.Splice(fm, cfg.Root, outputPath(cfg))
}

// DryRunRender renders what Generate would splice, without writing
// anything.
func DryRunRender(cfg *config.Config) (string, error) {
	fm, err := discoverModel(cfg)
	if err != nil {
		return "", err
	}
	if cfg.Fix {
		fixed, _ := lint.PrefixFixer{}.Apply(fm)
		fm = fixed
	}
	return generator.Render(fm, cfg.Root)
}

// Run executes the operation selected by cfg's flags: --remove, --lint,
// --list/--dry-run, or (by default) generation.
func Run(cfg *config.Config, stdout io.Writer) error {
	switch {
	case cfg.Remove:
		return Remove(cfg)
	case cfg.Lint:
		return Lint(cfg, stdout)
	case cfg.DryRun:
		body, err := DryRunRender(cfg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, body)
		return err
	case cfg.List:
		return Report(cfg, stdout)
	default:
		return Generate(cfg)
	}
}
