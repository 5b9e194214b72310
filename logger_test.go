package svg2polylines

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLogger(t *testing.T) {
	test.That(t, Logger() != nil)

	b := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(b, nil)))
	defer SetLogger(nil)

	_, err := ParseString(document("M 1,1 Z"))
	test.Error(t, err)
	test.That(t, strings.Contains(b.String(), "skipping path element"))

	SetLogger(nil)
	test.That(t, Logger() != nil)
	Logger().Warn("discarded")
}
