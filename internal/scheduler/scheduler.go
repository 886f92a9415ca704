package scheduler

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/dl/bytelit/internal/input"
	"github.com/dl/bytelit/internal/lang"
	"github.com/dl/bytelit/internal/output"
	"github.com/dl/bytelit/internal/walker"
)

// Job describes how every file is formatted.
type Job struct {
	Style   lang.Style
	Options lang.Options
	// Comment, if set, is rendered in the style's comment syntax above each literal.
	Comment string
	// Namer derives the variable name from the file path. When nil,
	// Options.Name is used for every file.
	Namer func(path string) string
}

// Scheduler manages a pool of workers that load and format files concurrently.
type Scheduler struct {
	workers int
	reader  input.Reader
	job     Job
}

// New creates a Scheduler with the given number of workers.
// If workers is 0 or negative, defaults to NumCPU.
func New(workers int, r input.Reader, job Job) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{
		workers: workers,
		reader:  r,
		job:     job,
	}
}

// Run processes files from the channel and returns one result per file.
// Results carry the entry's sequence number and arrive in completion order.
func (s *Scheduler) Run(files <-chan walker.FileEntry) <-chan output.Result {
	resultCh := make(chan output.Result, s.workers*2)

	var wg sync.WaitGroup
	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range files {
				result := s.processFile(entry.Path)
				result.Seq = entry.Seq
				resultCh <- result
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}

func (s *Scheduler) processFile(path string) output.Result {
	buf, err := s.reader.Read(path)
	if err != nil {
		return output.Result{Path: path, Style: s.job.Style, Err: err}
	}
	defer buf.Release()

	return FormatBuffer(path, buf.Data, s.job)
}

// FormatBuffer formats data according to job. It is the single-buffer path
// shared by the workers and the stdin mode.
func FormatBuffer(path string, data []byte, job Job) output.Result {
	opts := job.Options
	if job.Namer != nil && path != "" {
		opts.Name = job.Namer(path)
	}
	if opts.Name == "" {
		opts.Name = job.Style.DefaultName()
	}

	result := output.Result{
		Path:   path,
		Style:  job.Style,
		Name:   opts.Name,
		Length: len(data),
	}

	literal, err := lang.Format(job.Style, data, opts)
	if err != nil {
		if path != "" {
			err = fmt.Errorf("%s: %w", path, err)
		}
		result.Err = err
		return result
	}
	result.Literal = literal

	if job.Comment != "" {
		comment, err := lang.Comment(job.Style, job.Comment, opts.Wrap)
		if err != nil {
			result.Err = err
			return result
		}
		result.Comment = comment
	}
	return result
}
