package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sdlcforge/makefwd/internal/cache"
	"github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/iter"
	"github.com/sdlcforge/makefwd/internal/locator"
	"github.com/sdlcforge/makefwd/internal/makegrammar"
	"github.com/sdlcforge/makefwd/internal/model"
	"github.com/sdlcforge/makefwd/internal/pipeline"
	"github.com/sdlcforge/makefwd/internal/target"
)

// makeTimeout bounds a single `make -np` invocation, the same idiom the
// teacher's discovery used for its own `make` invocations: a pathological
// Makefile (an infinite $(shell ...) loop, a hung recursive sub-make) must
// not hang the whole discovery pass indefinitely.
const makeTimeout = 30 * time.Second

// Service discovers subdirectory Makefiles under a root directory and the
// targets each one declares, by pairing internal/locator (which finds the
// Makefiles on disk) with internal/pipeline (which parses the `make -np`
// database dump each one produces).
type Service struct {
	executor       CommandExecutor
	locator        *locator.NestedLocator
	mode           pipeline.Mode
	verbose        bool
	cache          *cache.Cache
	makeExecutable string
}

// NewService creates a discovery Service using the given executor, nested
// locator and pipeline assembly mode. cache may be nil, in which case
// every Makefile is always reparsed.
func NewService(executor CommandExecutor, loc *locator.NestedLocator, mode pipeline.Mode, verbose bool, c *cache.Cache) *Service {
	return &Service{executor: executor, locator: loc, mode: mode, verbose: verbose, cache: c, makeExecutable: "make"}
}

// WithMakeExecutable sets the path to the make binary invoked for each
// discovered Makefile, overriding the "make" default.
func (s *Service) WithMakeExecutable(path string) *Service {
	if path != "" {
		s.makeExecutable = path
	}
	return s
}

// Discover walks root for subdirectory Makefiles (the root's own Makefile,
// if any, is never itself forwarded into — internal/locator's
// NestedLocator walks the root but never yields it) and parses each one's
// targets, returning one
// model.Directory per Makefile found, in discovery order.
func (s *Service) Discover(root string) ([]model.Directory, error) {
	ctx, err := s.locator.Acquire(root)
	if err != nil {
		return nil, err
	}
	defer ctx.Close()

	if s.verbose {
		fmt.Printf("Discovering Makefiles under: %s\n", root)
	}

	var dirs []model.Directory
	it := ctx.Iterator()
	for {
		if err := it.Advance(); err != nil {
			return nil, err
		}
		if it.AtEnd() {
			break
		}
		mf := it.Current()

		if s.verbose {
			fmt.Printf("Found Makefile: %s/%s\n", mf.ExecPath, mf.FilePath)
		}

		targets, err := s.discoverTargets(mf)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, model.Directory{Makefile: mf, Targets: targets})
	}

	return dirs, nil
}

// discoverTargets runs `make -np` in mf's directory and feeds the output
// through the parse pipeline to recover its targets, unless a content
// fingerprint match in the cache makes that unnecessary.
func (s *Service) discoverTargets(mf target.Makefile) ([]target.Target, error) {
	if s.verbose {
		fmt.Printf("Discovering targets from: %s/%s\n", mf.ExecPath, mf.FilePath)
	}

	mfPath := filepath.Join(mf.ExecPath, mf.FilePath)
	var content []byte
	if s.cache != nil {
		var err error
		content, err = os.ReadFile(mfPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", mfPath, err)
		}
		if cached, ok := s.cache.Lookup(mfPath, content); ok {
			if s.verbose {
				fmt.Printf("Cache hit for: %s\n", mfPath)
			}
			return cached, nil
		}
	}

	targets, err := s.runPipeline(mf)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Store(mfPath, content, targets)
	}

	return targets, nil
}

// runPipeline actually invokes `make -np` and parses its output.
func (s *Service) runPipeline(mf target.Makefile) ([]target.Target, error) {
	timeoutCtx, cancel := context.WithTimeout(context.Background(), makeTimeout)
	defer cancel()

	command := fmt.Sprintf("%s -C %s -f %s -np", s.makeExecutable, mf.ExecPath, mf.FilePath)
	stdout, stderr, err := s.executor.ExecuteContext(timeoutCtx, s.makeExecutable, "-C", mf.ExecPath, "-f", mf.FilePath, "-np")
	if err != nil {
		if timeoutCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%s timed out after %s", command, makeTimeout)
		}
		return nil, errors.NewMakeExecutionError(command, stderr)
	}

	g := pipeline.Grammar{
		Paragraph: makegrammar.NewParagraphLexer(),
		Rule:      makegrammar.NewRuleLexer(),
		Parser:    makegrammar.NewRuleParser(),
	}

	it, err := pipeline.Build(s.mode, strings.NewReader(stdout), g, mf)
	if err != nil {
		return nil, err
	}
	return iter.Drain[target.Target](it)
}
