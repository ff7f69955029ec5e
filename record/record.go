package record

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedRecord indicates input that cannot be decoded into a Record.
var ErrMalformedRecord = errors.New("record: malformed record")

// emptyOutput is the text-form token for an edge that prints nothing.
const emptyOutput = "-"

// Edge is one persisted transition.
type Edge struct {
	Source int    `yaml:"source"`
	Target int    `yaml:"target"`
	Reads  string `yaml:"reads"`
	Prints string `yaml:"prints"`

	// Consumes is nil when the field was absent from the source document.
	Consumes *bool `yaml:"consumes,omitempty"`
}

// Record is a persisted transducer.
type Record struct {
	NodeCount int    `yaml:"nodes"`
	Edges     []Edge `yaml:"edges"`
}

// Bool returns a pointer to b, for building Edge literals.
func Bool(b bool) *bool { return &b }

// ParseText decodes the text form.
func ParseText(s string) (Record, error) {
	return ReadText(strings.NewReader(s))
}

// ReadText decodes the text form from r.
func ReadText(r io.Reader) (Record, error) {
	var rec Record
	sc := bufio.NewScanner(r)
	header := false
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if !header {
			n, err := strconv.Atoi(text)
			if err != nil || n < 0 {
				return Record{}, fmt.Errorf("%w: line %d: node count %q", ErrMalformedRecord, line, text)
			}
			rec.NodeCount = n
			header = true
			continue
		}
		e, err := parseEdge(text)
		if err != nil {
			return Record{}, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		rec.Edges = append(rec.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("record: read: %w", err)
	}
	if !header {
		return Record{}, fmt.Errorf("%w: missing node count", ErrMalformedRecord)
	}

	return rec, nil
}

func parseEdge(text string) (Edge, error) {
	f := strings.Fields(text)
	if len(f) != 5 {
		return Edge{}, fmt.Errorf("want 5 fields, got %d", len(f))
	}
	src, err := strconv.Atoi(f[0])
	if err != nil {
		return Edge{}, fmt.Errorf("source %q", f[0])
	}
	dst, err := strconv.Atoi(f[1])
	if err != nil {
		return Edge{}, fmt.Errorf("target %q", f[1])
	}
	prints := f[3]
	if prints == emptyOutput {
		prints = ""
	}
	consumes, err := strconv.ParseBool(f[4])
	if err != nil {
		return Edge{}, fmt.Errorf("consumes %q", f[4])
	}

	return Edge{Source: src, Target: dst, Reads: f[2], Prints: prints, Consumes: &consumes}, nil
}

// WriteText encodes rec in the text form to w.
// An edge without Consumes cannot be written in text form.
func WriteText(w io.Writer, rec Record) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", rec.NodeCount)
	for i, e := range rec.Edges {
		if e.Consumes == nil {
			return fmt.Errorf("%w: edge %d has no consumes flag", ErrMalformedRecord, i)
		}
		prints := e.Prints
		if prints == "" {
			prints = emptyOutput
		}
		fmt.Fprintf(bw, "%d %d %s %s %t\n", e.Source, e.Target, e.Reads, prints, *e.Consumes)
	}

	return bw.Flush()
}

// FormatText returns the text form of rec.
func FormatText(rec Record) (string, error) {
	var b strings.Builder
	if err := WriteText(&b, rec); err != nil {
		return "", err
	}

	return b.String(), nil
}

// MarshalYAML returns the YAML form of rec.
func MarshalYAML(rec Record) ([]byte, error) {
	return yaml.Marshal(rec)
}

// UnmarshalYAML decodes the YAML form, rejecting unknown fields.
func UnmarshalYAML(data []byte) (Record, error) {
	var rec Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if rec.NodeCount < 0 {
		return Record{}, fmt.Errorf("%w: node count %d", ErrMalformedRecord, rec.NodeCount)
	}

	return rec, nil
}
