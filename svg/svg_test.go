package svg

import (
	"bytes"
	"testing"

	"github.com/tdewolff/test"

	"github.com/plotkit/svg2polylines"
)

func TestWriter(t *testing.T) {
	lines := []svg2polylines.Polyline{
		{{X: 0.0, Y: 0.0}, {X: 10.0, Y: 0.0}},
		{{X: 0.0, Y: 5.0}, {X: 10.0, Y: 5.0}},
	}

	b := &bytes.Buffer{}
	test.Error(t, Writer(b, lines))
	test.String(t, b.String(), `<svg version="1.1" width="10" height="5" viewBox="0 0 10 5" xmlns="http://www.w3.org/2000/svg"><path d="M0 0L10 0" fill="none" stroke="black"/><path d="M0 5L10 5" fill="none" stroke="black"/></svg>`)
}

func TestWriterSkipsDegenerate(t *testing.T) {
	lines := []svg2polylines.Polyline{
		{{X: 5.0, Y: 5.0}},
		{{X: 0.0, Y: 0.0}, {X: 2.5, Y: 1.0}},
	}

	b := &bytes.Buffer{}
	test.Error(t, Writer(b, lines))
	test.String(t, b.String(), `<svg version="1.1" width="5" height="5" viewBox="0 0 5 5" xmlns="http://www.w3.org/2000/svg"><path d="M0 0L2.5 1" fill="none" stroke="black"/></svg>`)
}
