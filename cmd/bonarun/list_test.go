package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/bonarun/internal/registry"
)

func TestWriteGameListAligns(t *testing.T) {
	var buf bytes.Buffer
	games := []registry.GameInfo{
		{ID: "bonarun", Title: "Bona Run"},
		{ID: "x", Title: "Short"},
	}
	if err := writeGameList(&buf, games); err != nil {
		t.Fatalf("writeGameList: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"  bonarun  Bona Run\n", "  x        Short\n", "bonarun play <id>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGameListEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeGameList(&buf, nil); err != nil {
		t.Fatalf("writeGameList: %v", err)
	}
	if got := buf.String(); got != "No games registered.\n" {
		t.Errorf("output = %q", got)
	}
}
