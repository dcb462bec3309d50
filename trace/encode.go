package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// record is the wire shape of one encoded event.
type record struct {
	Seq  int    `json:"seq"`
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// Encode writes t to w as JSON lines, one event per line.
func Encode[E Event](w io.Writer, t Trace[E]) error {
	enc := json.NewEncoder(w)
	for i, e := range t.events {
		if err := enc.Encode(record{Seq: i, Kind: e.Kind(), Data: e}); err != nil {
			return fmt.Errorf("trace: encode event %d (%s): %w", i, e.Kind(), err)
		}
	}

	return nil
}

// Lines returns the JSON-lines encoding of t split into lines.
func Lines[E Event](t Trace[E]) ([]string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return nil, err
	}

	return difflib.SplitLines(buf.String()), nil
}

// Diff renders a unified diff between two traces. An empty string means both
// traces encode to the same bytes.
func Diff[E Event](a, b Trace[E]) (string, error) {
	la, err := Lines(a)
	if err != nil {
		return "", err
	}
	lb, err := Lines(b)
	if err != nil {
		return "", err
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        la,
		B:        lb,
		FromFile: "a",
		ToFile:   "b",
		Context:  2,
	})
	if err != nil {
		return "", fmt.Errorf("trace: diff: %w", err)
	}

	return strings.TrimSpace(out), nil
}
