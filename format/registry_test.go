package format

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/marcwalk/hub"
)

type stubParser struct{ name string }

func (s stubParser) Name() string { return s.name }
func (s stubParser) Description() string { return s.name }
func (s stubParser) Extensions() []string { return []string{"xml"} }
func (s stubParser) CanParse(p []byte) bool { return bytes.HasPrefix(p, []byte("<")) }
func (s stubParser) Parse(io.Reader, *ParseOptions) ([]hub.Record, error) {
	return nil, nil
}

type stubSerializer struct {
	name string
	exts []string
}

func (s stubSerializer) Name() string { return s.name }
func (s stubSerializer) Description() string { return s.name }
func (s stubSerializer) Extensions() []string { return s.exts }
func (s stubSerializer) CanParse([]byte) bool { return false }
func (s stubSerializer) Serialize(io.Writer, []hub.Record, *SerializeOptions) error {
	return nil
}

func newStubRegistry() *Registry {
	r := NewRegistry()
	r.Register(stubSerializer{name: "jsonl", exts: []string{"jsonl", "ndjson"}})
	r.Register(stubParser{name: "marcxml"})
	r.Register(stubSerializer{name: "CSV", exts: []string{"csv", "tsv"}})
	return r
}

func TestRegistryLookup(t *testing.T) {
	r := newStubRegistry()

	if got := r.List(); !reflect.DeepEqual(got, []string{"csv", "jsonl", "marcxml"}) {
		t.Errorf("List() = %q", got)
	}
	if got := r.Serializers(); !reflect.DeepEqual(got, []string{"csv", "jsonl"}) {
		t.Errorf("Serializers() = %q", got)
	}

	if _, err := r.GetParser("MARCXML"); err != nil {
		t.Errorf("GetParser(MARCXML) error = %v", err)
	}
	if _, err := r.GetSerializer("marcxml"); err == nil {
		t.Error("GetSerializer(marcxml) succeeded for a parse-only format")
	}
	if _, err := r.GetParser("csv"); err == nil {
		t.Error("GetParser(csv) succeeded for an output-only format")
	}
	if _, err := r.GetSerializer("bibtex"); err == nil {
		t.Error("GetSerializer(bibtex) succeeded for an unknown format")
	}
}

func TestRegistryDetect(t *testing.T) {
	r := newStubRegistry()

	tests := []struct {
		filename string
		peek     string
		want     string
	}{
		{"records.xml", "", "marcxml"},
		{"records.TSV", "", "csv"},
		{"stdin", "  <collection/>", "marcxml"},
		{"out.ndjson", "", "jsonl"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			f, err := r.DetectFormat(tt.filename, []byte(tt.peek))
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got := strings.ToLower(f.Name()); got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := r.DetectFormat("records.mrc", nil); err == nil {
		t.Error("DetectFormat(records.mrc) succeeded")
	}
}

func TestDetectSerializer(t *testing.T) {
	r := newStubRegistry()

	s, err := r.DetectSerializer("/tmp/out.csv")
	if err != nil {
		t.Fatalf("DetectSerializer() error = %v", err)
	}
	if s.Name() != "CSV" {
		t.Errorf("DetectSerializer() = %q, want CSV", s.Name())
	}

	if _, err := r.DetectSerializer("records.xml"); err == nil {
		t.Error("DetectSerializer(records.xml) matched a parse-only format")
	}
	if _, err := r.DetectSerializer("output"); err == nil {
		t.Error("DetectSerializer(output) matched without an extension")
	}
}
