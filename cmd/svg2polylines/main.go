package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	minifysvg "github.com/tdewolff/minify/v2/svg"

	"github.com/plotkit/svg2polylines"
	"github.com/plotkit/svg2polylines/dxf"
	"github.com/plotkit/svg2polylines/svg"
)

type Convert struct {
	Output   string  `short:"o" desc:"Output file (default stdout)"`
	Format   string  `short:"f" default:"svg" desc:"Output format: svg, dxf or json"`
	Simplify float64 `short:"s" default:"0" desc:"Simplification tolerance (0 disables)"`
	Flatness float64 `default:"0.15" desc:"Maximum deviation when flattening curves"`
	Minify   bool    `short:"m" desc:"Minify SVG output"`
	Verbose  bool    `short:"v" desc:"Log skipped path elements to stderr"`
	Input    string  `index:"0" desc:"Input SVG file"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "convert SVG path data to polylines")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Convert) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		svg2polylines.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	parser := svg2polylines.NewParser()
	parser.Flatness = cmd.Flatness
	lines, err := parser.Parse(f)
	if err != nil {
		return err
	}
	if 0.0 < cmd.Simplify {
		lines = svg2polylines.Simplify(lines, cmd.Simplify)
	}

	points := 0
	for _, line := range lines {
		points += len(line)
	}
	fmt.Fprintf(os.Stderr, "%d polylines, %d points\n", len(lines), points)

	w := io.Writer(os.Stdout)
	if cmd.Output != "" {
		fw, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer fw.Close()
		w = fw
	}

	switch cmd.Format {
	case "svg":
		if !cmd.Minify {
			return svg.Writer(w, lines)
		}
		b := &bytes.Buffer{}
		if err := svg.Writer(b, lines); err != nil {
			return err
		}
		m := minify.New()
		m.AddFunc("image/svg+xml", minifysvg.Minify)
		return m.Minify("image/svg+xml", w, b)
	case "dxf":
		return dxf.Writer(w, lines)
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(lines)
	}
	fmt.Fprintf(os.Stderr, "ERROR: unknown format %q\n", cmd.Format)
	return argp.ShowUsage
}
