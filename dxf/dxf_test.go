package dxf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"github.com/plotkit/svg2polylines"
)

func TestWriterLine(t *testing.T) {
	lines := []svg2polylines.Polyline{
		{{X: 1.0, Y: 2.0}, {X: 3.0, Y: 4.0}},
	}

	b := &bytes.Buffer{}
	test.Error(t, Writer(b, lines))
	test.String(t, b.String(), strings.Join([]string{
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"8", "0",
		"10", "1",
		"20", "-2",
		"11", "3",
		"21", "-4",
		"0", "ENDSEC",
		"0", "EOF",
	}, "\n")+"\n")
}

func TestWriterPolyline(t *testing.T) {
	lines := []svg2polylines.Polyline{
		{{X: 0.0, Y: 1.0}, {X: 5.0, Y: 5.0}, {X: 10.0, Y: 1.0}},
	}

	b := &bytes.Buffer{}
	test.Error(t, Writer(b, lines))
	test.String(t, b.String(), strings.Join([]string{
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "POLYLINE",
		"8", "0",
		"66", "1",
		"0", "VERTEX",
		"8", "0",
		"10", "0",
		"20", "-1",
		"0", "VERTEX",
		"8", "0",
		"10", "5",
		"20", "-5",
		"0", "VERTEX",
		"8", "0",
		"10", "10",
		"20", "-1",
		"0", "SEQEND",
		"0", "ENDSEC",
		"0", "EOF",
	}, "\n")+"\n")
}

func TestWriterSkipsDegenerate(t *testing.T) {
	lines := []svg2polylines.Polyline{
		{{X: 5.0, Y: 5.0}},
	}

	b := &bytes.Buffer{}
	test.Error(t, Writer(b, lines))
	test.String(t, b.String(), "0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n")
}

func TestWriterFractional(t *testing.T) {
	lines := []svg2polylines.Polyline{
		{{X: 1.5, Y: 1.25}, {X: 2.0, Y: 3.0}},
	}

	b := &bytes.Buffer{}
	test.Error(t, Writer(b, lines))
	test.String(t, b.String(), strings.Join([]string{
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"8", "0",
		"10", "1.5",
		"20", "-1.25",
		"11", "2",
		"21", "-3",
		"0", "ENDSEC",
		"0", "EOF",
	}, "\n")+"\n")
}
