package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/geoset/centroid/internal/config"
	"github.com/geoset/centroid/internal/geo"
	"github.com/geoset/centroid/internal/sources"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input  string `short:"i" long:"in" description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	From   string `short:"s" long:"source-format" description:"Input point layout" choice:"track" choice:"plain" choice:"tagged" required:"true"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	points, err := adaptAll(opts.From, inputData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing input: %v\n", err)
		os.Exit(1)
	}

	centroid, err := geo.Centroid(points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fc := geo.Collection(points, centroid)

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(fc)
	} else {
		outputData, err = json.MarshalIndent(fc, "", "  ")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Converted %d points to %s (format: %s)\n", len(points), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}

// adaptAll parses the raw data in the given layout and adapts every record.
func adaptAll(format string, data []byte) ([]geo.LatLon, error) {
	switch format {
	case config.FormatTrack:
		pts, err := sources.ParseTrack(data)
		if err != nil {
			return nil, err
		}
		out := make([]geo.LatLon, 0, len(pts))
		for _, p := range pts {
			out = append(out, geo.FromTrack(p))
		}
		return out, nil

	case config.FormatPlain:
		pts, err := sources.ParsePlain(data)
		if err != nil {
			return nil, err
		}
		out := make([]geo.LatLon, 0, len(pts))
		for _, p := range pts {
			out = append(out, geo.FromPlain(p))
		}
		return out, nil

	case config.FormatTagged:
		pts, err := sources.ParseTagged(data)
		if err != nil {
			return nil, err
		}
		out := make([]geo.LatLon, 0, len(pts))
		for _, p := range pts {
			out = append(out, geo.FromTagged(p))
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown source format %q", format)
}
