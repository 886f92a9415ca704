package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dl/bytelit/internal/input"
	"github.com/dl/bytelit/internal/lang"
	"github.com/dl/bytelit/internal/output"
	"github.com/dl/bytelit/internal/scheduler"
	"github.com/dl/bytelit/internal/walker"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0 // every input formatted
	ExitPartial = 1 // at least one input failed
	ExitUsage   = 2 // invalid configuration
)

// Run executes a bytelit run with the given config against the process's
// standard streams. Returns the exit code.
func Run(cfg Config) int {
	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal()
	}
	return RunWith(cfg, os.Stdin, output.NewWriter(), os.Stderr, useColor)
}

// RunWith is Run with explicit streams.
func RunWith(cfg Config, stdin io.Reader, stdout io.Writer, stderr io.Writer, useColor bool) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Level: log.WarnLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return ExitUsage
	}
	style, _ := lang.ParseStyle(cfg.Style)

	var formatter output.Formatter
	if cfg.JSONOutput {
		formatter = output.NewJSONFormatter()
	} else {
		styles := output.NoStyles()
		if useColor {
			styles = output.NewStyles()
		}
		formatter = output.NewTextFormatter(styles, useColor, cfg.Wrap)
	}

	job := scheduler.Job{
		Style:   style,
		Options: lang.Options{Wrap: cfg.Wrap, Name: cfg.Name},
		Comment: cfg.Comment,
	}

	if len(cfg.Paths) == 0 {
		return runStdin(input.NewStdinReader(stdin), job, formatter, stdout, logger)
	}

	if cfg.multiSource() && cfg.Name == "" {
		job.Namer = IdentifierFromPath
	}
	return runFiles(cfg, job, formatter, stdout, logger)
}

func runStdin(reader input.Reader, job scheduler.Job, formatter output.Formatter, w io.Writer, logger *log.Logger) int {
	buf, err := reader.Read("")
	if err != nil {
		logger.Error("read failed", "err", err)
		return ExitPartial
	}
	defer buf.Release()

	result := scheduler.FormatBuffer("", buf.Data, job)
	if result.Err != nil {
		logger.Error("format failed", "style", job.Style, "err", result.Err)
		return ExitPartial
	}

	ow := output.NewOrderedWriter(w, formatter, false)
	if err := ow.WriteResult(result); err != nil {
		logger.Error("write failed", "err", err)
		return ExitPartial
	}
	return ExitOK
}

func runFiles(cfg Config, job scheduler.Job, formatter output.Formatter, w io.Writer, logger *log.Logger) int {
	filter, err := walker.NewFilter(cfg.Globs, cfg.MaxSize)
	if err != nil {
		logger.Error("invalid filter", "err", err)
		return ExitUsage
	}

	fileCh, errCh := walker.Walk(cfg.Paths, walker.WalkOptions{
		Recursive: cfg.Recursive,
		NoIgnore:  cfg.NoIgnore,
		Hidden:    cfg.Hidden,
		Filter:    filter,
	})

	// Log walk errors in background
	var walkFailures int
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range errCh {
			walkFailures++
			logger.Warn("walk error", "err", err)
		}
	}()

	reader := input.NewAdaptiveReader(cfg.MmapThreshold)
	sched := scheduler.New(cfg.Workers, reader, job)
	resultCh := sched.Run(fileCh)

	// Write results in order
	var formatted, failed int
	ow := output.NewOrderedWriter(w, formatter, cfg.multiSource())
	werr := ow.WriteOrdered(resultCh, func(r output.Result) {
		if !r.OK() {
			failed++
			logger.Warn("format failed", "path", r.Path, "err", r.Err)
			return
		}
		formatted++
	})
	wg.Wait()

	if werr != nil {
		logger.Error("write failed", "err", werr)
		return ExitPartial
	}
	if formatted == 0 && failed == 0 && walkFailures == 0 {
		logger.Warn("no input files", "paths", cfg.Paths)
		return ExitPartial
	}
	if failed > 0 || walkFailures > 0 {
		return ExitPartial
	}
	return ExitOK
}

// ListStyles writes one line per registered style: its name, its default
// variable name and whether it renders literals.
func ListStyles(w io.Writer) error {
	for _, s := range lang.Styles() {
		kind := "literal, comment"
		if !s.HasLiteral() {
			kind = "comment"
		}
		name := s.DefaultName()
		if name == "" {
			name = "-"
		}
		if _, err := fmt.Fprintf(w, "%-14s %-10s %s\n", s, name, kind); err != nil {
			return err
		}
	}
	return nil
}
