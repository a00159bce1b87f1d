package ordmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := newIntMap(t, 2, 1, 3)
	var buf bytes.Buffer
	if err := ToDot(m, &buf); err != nil {
		t.Fatalf("ToDot failed: %v", err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT digraph")
	}
	for _, label := range []string{`label="2\n(3)"`, `label="1\n(1)"`, `label="3\n(1)"`} {
		if !strings.Contains(dot, label) {
			t.Errorf("expected node %s in output", label)
		}
	}
	// 3 keys → 2 inner edges plus 4 edges to empty children
	if n := strings.Count(dot, "->"); n != 6 {
		t.Errorf("expected 6 edges, got %d", n)
	}
	if n := strings.Count(dot, "shape=point"); n != 4 {
		t.Errorf("expected 4 empty children, got %d", n)
	}
}

func TestToDotEscapesQuotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := NewOrdered[string, int]()
	_ = m.Put(`say "hi"`, 1)
	var buf bytes.Buffer
	_ = ToDot(m, &buf)
	if !strings.Contains(buf.String(), `say \"hi\"`) {
		t.Errorf("expected quotes to be escaped, got %s", buf.String())
	}
}
