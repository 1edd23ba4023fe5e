// Command reliefbatch runs the relief pipeline over every supported image in
// a directory, several images at a time.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"relief-mapper/internal/config"
	mapimage "relief-mapper/internal/image"
	"relief-mapper/internal/relief"
)

// summary is the outcome of one image.
type summary struct {
	Path     string
	Lines    int
	Regions  int
	Islands  int
	Warnings int
	Err      error
}

func main() {
	dir := flag.String("dir", "", "Directory of contour map images")
	configPath := flag.String("config", "", "YAML config file")
	jobs := flag.Int("jobs", runtime.NumCPU(), "Images processed in parallel")
	failFast := flag.Bool("fail-fast", false, "Stop at the first image that fails")
	flag.Parse()

	if *dir == "" {
		fmt.Println("Usage: reliefbatch -dir <directory> [-jobs N] [-config file.yaml] [-fail-fast]")
		os.Exit(1)
	}

	opts, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	paths, err := listImages(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list %s: %v\n", *dir, err)
		os.Exit(1)
	}

	results, err := processAll(context.Background(), paths, opts, *jobs, *failFast)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Batch aborted: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, s := range results {
		if s.Err != nil {
			failed++
			fmt.Printf("%-40s FAILED: %v\n", filepath.Base(s.Path), s.Err)
			continue
		}
		fmt.Printf("%-40s lines=%d regions=%d islands=%d warnings=%d\n",
			filepath.Base(s.Path), s.Lines, s.Regions, s.Islands, s.Warnings)
	}
	log.Printf("Processed %d images, %d failed", len(results), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// listImages returns the supported image files in dir, sorted by name.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !mapimage.IsSupportedFormat(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// processAll runs every image through its own pipeline. Each run owns its
// grids; nothing is shared between goroutines except the results slice,
// where each goroutine writes only its own index.
func processAll(ctx context.Context, paths []string, opts relief.Options, jobs int, failFast bool) ([]summary, error) {
	results := make([]summary, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = summary{Path: path, Err: err}
				return nil
			}
			results[i] = processOne(path, opts)
			if failFast && results[i].Err != nil {
				return fmt.Errorf("%s: %w", path, results[i].Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func processOne(path string, opts relief.Options) summary {
	s := summary{Path: path}
	src, err := mapimage.Load(path)
	if err != nil {
		s.Err = err
		return s
	}
	res, err := relief.Run(src.Image, opts)
	if err != nil {
		s.Err = err
		return s
	}
	s.Lines = len(res.Lines)
	s.Regions = len(res.Regions)
	s.Islands = res.Islands
	s.Warnings = len(res.Warnings)
	return s
}
