package engine

import (
	"fmt"
	"regexp/syntax"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
	"github.com/dlclark/regexp2"
)

// Build compiles pattern with automatic engine selection.
//
// The simple engine is preferred. The backtracking engine is used when the
// classifier flags the pattern, when the configuration demands a feature
// the simple engine cannot express, or when the simple compile fails.
// A *CompileError is returned only if the fallback fails as well, carrying
// the backtracking engine's diagnostic.
func Build(pattern string, cfg Config) (Engine, error) {
	if NeedsBacktracking(pattern) || cfg.IgnoreWhitespace {
		return buildBacktracking(pattern, cfg)
	}
	eng, err := buildSimple(pattern, cfg)
	if err != nil {
		return buildBacktracking(pattern, cfg)
	}
	return eng, nil
}

// BuildWithKind compiles pattern with exactly the requested engine,
// bypassing the classifier. Patterns or options the engine does not
// support fail with a *CompileError.
func BuildWithKind(pattern string, cfg Config, kind Kind) (Engine, error) {
	switch kind {
	case Simple:
		return buildSimple(pattern, cfg)
	case Backtracking:
		return buildBacktracking(pattern, cfg)
	}
	return nil, &CompileError{Kind: kind, Pattern: pattern, Err: fmt.Errorf("unknown engine kind %d", kind)}
}

// maxDFAStates is the largest lazy-DFA state budget the simple backend
// accepts; larger requests clamp to it rather than truncating through the
// uint32 conversion.
const maxDFAStates = 1_000_000

func buildSimple(pattern string, cfg Config) (Engine, error) {
	if cfg.IgnoreWhitespace {
		return nil, &CompileError{Kind: Simple, Pattern: pattern, Err: ErrUnsupportedConfig}
	}

	effective := cfg.flagPrefix() + pattern
	if cfg.SizeLimit > 0 {
		if err := checkProgramSize(effective, cfg.SizeLimit); err != nil {
			return nil, &CompileError{Kind: Simple, Pattern: pattern, Err: err}
		}
	}

	mc := meta.DefaultConfig()
	if cfg.DFASizeLimit > 0 {
		limit := cfg.DFASizeLimit
		if limit > maxDFAStates {
			limit = maxDFAStates
		}
		mc.MaxDFAStates = uint32(limit)
	}

	re, err := coregex.CompileWithConfig(effective, mc)
	if err != nil {
		return nil, &CompileError{Kind: Simple, Pattern: pattern, Err: err}
	}
	return &simpleEngine{re: re, names: re.SubexpNames()}, nil
}

func buildBacktracking(pattern string, cfg Config) (Engine, error) {
	opts := regexp2.None
	if cfg.CaseInsensitive {
		opts |= regexp2.IgnoreCase
	}
	if cfg.Multiline {
		opts |= regexp2.Multiline
	}
	if cfg.IgnoreWhitespace {
		opts |= regexp2.IgnorePatternWhitespace
	}
	if cfg.UnicodeMode {
		opts |= regexp2.Unicode
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, &CompileError{Kind: Backtracking, Pattern: pattern, Err: err}
	}
	if cfg.BacktrackLimit > 0 {
		re.MatchTimeout = cfg.BacktrackLimit
	}
	return &backtrackEngine{re: re, names: backtrackSubexpNames(re)}, nil
}

// checkProgramSize enforces Config.SizeLimit by compiling the pattern to a
// regexp/syntax program and counting its instructions. The simple engine
// parses the same syntax, so a pattern that passes here compiles there.
func checkProgramSize(pattern string, limit int) error {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return err
	}
	prog, err := syntax.Compile(re.Simplify())
	if err != nil {
		return err
	}
	if len(prog.Inst) > limit {
		return fmt.Errorf("%w: %d instructions (limit %d)", ErrSizeLimitExceeded, len(prog.Inst), limit)
	}
	return nil
}
