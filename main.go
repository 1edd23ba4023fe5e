// Package main provides the entry point for the relief mapper.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"relief-mapper/internal/cleanup"
	"relief-mapper/internal/config"
	mapimage "relief-mapper/internal/image"
	"relief-mapper/internal/project"
	"relief-mapper/internal/relief"
	"relief-mapper/internal/render"
	"relief-mapper/internal/version"
)

const appTitle = "Relief Mapper"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var debug bool
	flag.BoolVar(&debug, "debug", false, "Write intermediate images and print region/line maps")
	flag.BoolVar(&debug, "d", false, "Shorthand for -debug")
	configPath := flag.String("config", "", "YAML file with reference_color, tolerance and step")
	iterations := flag.Int("cleanup", 0, "Morphological cleanup iterations (0 disables)")
	outPath := flag.String("o", "", "Write a relative 16-bit heightmap PNG to this path")
	modelPath := flag.String("json", "", "Save the elevation model (regions, lines, heights) as JSON; a .zst suffix compresses it")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", appTitle, version.String())
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	log.Printf("Starting %s v%s", appTitle, version.Version)
	if debug {
		log.Println("Debug mode enabled")
	}

	if err := run(flag.Arg(0), *configPath, *iterations, *outPath, *modelPath, debug); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(imagePath, configPath string, iterations int, outPath, modelPath string, debug bool) error {
	opts, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log.Printf("Using image: %s", imagePath)
	src, err := mapimage.Load(imagePath)
	if err != nil {
		return err
	}
	log.Printf("Loaded %s image: %dx%d pixels", src.Format, src.Width(), src.Height())

	opts.Cleanup = cleanup.Hook(iterations, func(err error) {
		log.Printf("Mask cleanup skipped: %v", err)
	})

	res, err := relief.Run(src.Image, opts)
	if err != nil {
		return err
	}

	if debug {
		if err := writeDebugImages(res); err != nil {
			return err
		}
		printMaps(res)
	}

	for _, w := range res.Warnings {
		log.Printf("Warning: %s", w)
	}
	log.Printf("Found %d lines, %d regions in %d islands (%d warnings)",
		len(res.Lines), len(res.Regions), res.Islands, len(res.Warnings))

	if outPath != "" {
		if err := render.WritePNG(outPath, render.HeightImage(res)); err != nil {
			return err
		}
		log.Printf("Saved heightmap at %s", outPath)
	}

	if modelPath != "" {
		model := project.New(res, opts)
		model.SetImage(modelPath, imagePath)
		if err := model.Save(modelPath); err != nil {
			return err
		}
		log.Printf("Saved model at %s", modelPath)
	}
	return nil
}

func writeDebugImages(res *relief.Result) error {
	if err := render.WritePNG("raw_mask.png", render.MaskImage(res.RawMask)); err != nil {
		return err
	}
	log.Println("Saved raw mask at raw_mask.png")

	if err := render.WritePNG("mask.png", render.MaskImage(res.Mask)); err != nil {
		return err
	}
	log.Println("Saved cleaned mask at mask.png")

	if err := render.WritePNG("regions.png", render.LabelImage(res.Labels)); err != nil {
		return err
	}
	if err := render.WritePNG("regions_color.png", render.FalseColor(res.Labels)); err != nil {
		return err
	}
	log.Println("Saved regions at regions.png and regions_color.png")
	return nil
}

func printMaps(res *relief.Result) {
	fmt.Println("Regions:")
	for _, l := range res.Regions.SortedLabels() {
		r := res.Regions[l]
		fmt.Printf("  %3d: lines=%v pixels=%d height=%s island=%d\n", l, r.Lines, r.Pixels, r.Height, r.Island)
	}
	fmt.Println("Lines:")
	for _, l := range res.Lines.SortedLabels() {
		ln := res.Lines[l]
		fmt.Printf("  %3d: up=%s down=%s pixels=%d height=%s island=%d\n", l, ln.Up, ln.Down, ln.Pixels, ln.Height, ln.Island)
	}
}
