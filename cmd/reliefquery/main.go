// Command reliefquery labels a contour map and reports the distance from a
// pixel to the nearest pixel of a given component.
package main

import (
	"flag"
	"fmt"
	"os"

	"relief-mapper/internal/config"
	mapimage "relief-mapper/internal/image"
	"relief-mapper/internal/relief"
	"relief-mapper/pkg/geometry"
)

func main() {
	imagePath := flag.String("image", "", "Path to contour map image")
	configPath := flag.String("config", "", "YAML config file")
	x := flag.Int("x", 0, "Origin X")
	y := flag.Int("y", 0, "Origin Y")
	label := flag.Int("label", -1, "Target label; omit to report every contour line")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: reliefquery -image <path> -x <x> -y <y> [-label <n>] [-config file.yaml]")
		os.Exit(1)
	}

	opts, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	src, err := mapimage.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	origin := geometry.Pt(*x, *y)
	if !origin.In(src.Width(), src.Height()) {
		fmt.Fprintf(os.Stderr, "Origin (%d,%d) outside %dx%d image\n", *x, *y, src.Width(), src.Height())
		os.Exit(1)
	}

	labels, _, lines, err := relief.LabelComponents(relief.Classify(src.Image, opts))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Labeling failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Origin (%d,%d) lies in component %d\n", *x, *y, labels.At(*x, *y))

	if *label >= 0 {
		if *label > int(relief.MaxLabel) {
			fmt.Fprintf(os.Stderr, "Label %d out of range 0-%d\n", *label, relief.MaxLabel)
			os.Exit(1)
		}
		report(labels, origin, relief.Label(*label))
		return
	}

	// No label given: report every contour line.
	for _, l := range lines.SortedLabels() {
		report(labels, origin, l)
	}
}

func report(labels *relief.LabelGrid, origin geometry.PointInt, l relief.Label) {
	if d, ok := relief.NearestDistance(labels, origin, l); ok {
		fmt.Printf("label %3d: distance %.3f\n", l, d)
	} else {
		fmt.Printf("label %3d: not found\n", l)
	}
}
