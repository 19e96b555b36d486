package mapping

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lehigh-university-libraries/marcwalk/hub"
)

func TestEmbeddedProfiles(t *testing.T) {
	r, err := NewProfileRegistry()
	if err != nil {
		t.Fatalf("NewProfileRegistry() error = %v", err)
	}

	want := []string{"authorities", "default", "holdings", "summary"}
	if got := r.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %q, want %q", got, want)
	}

	summary, ok := r.Get("summary")
	if !ok {
		t.Fatal("summary profile missing")
	}
	if summary.VersionedName() != "summary@1" {
		t.Errorf("VersionedName() = %q", summary.VersionedName())
	}
	if summary.GetMultiValueSeparator() != "; " {
		t.Errorf("GetMultiValueSeparator() = %q", summary.GetMultiValueSeparator())
	}
	if summary.Accepts(hub.KindAuthority) {
		t.Error("summary Accepts(authority) = true, want false")
	}
	if got := summary.ColumnsFor(hub.KindBibliographic); len(got) != 5 || got[2] != "creators.name" {
		t.Errorf("ColumnsFor(bibliographic) = %q", got)
	}

	authorities, _ := r.Get("authorities")
	if !authorities.Options.Strict {
		t.Error("authorities Options.Strict = false, want true")
	}
}

func TestProfileDefaults(t *testing.T) {
	var p *Profile
	if !p.Accepts(hub.KindHoldings) {
		t.Error("nil profile Accepts() = false, want true")
	}
	if got := p.ColumnsFor(hub.KindHoldings); !reflect.DeepEqual(got, DefaultColumns(hub.KindHoldings)) {
		t.Errorf("ColumnsFor() = %q", got)
	}

	empty := &Profile{}
	if empty.GetMultiValueSeparator() != "|" {
		t.Errorf("GetMultiValueSeparator() = %q, want |", empty.GetMultiValueSeparator())
	}
	if empty.GetCSVDelimiter() != "," {
		t.Errorf("GetCSVDelimiter() = %q, want ,", empty.GetCSVDelimiter())
	}
}

func TestProject(t *testing.T) {
	m := map[string]any{"id": "1", "title": "Scattering", "creators": []any{}}

	p := &Profile{Fields: []string{"id", "title", "missing"}}
	got := p.Project(m)
	want := map[string]any{"id": "1", "title": "Scattering"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Project() = %v, want %v", got, want)
	}

	if got := (&Profile{}).Project(m); len(got) != 3 {
		t.Errorf("Project() without fields dropped keys: %v", got)
	}
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		path, base, sub string
	}{
		{"title", "title", ""},
		{"creators.name", "creators", "name"},
		{"part_of.title", "part_of", "title"},
	}
	for _, tt := range tests {
		base, sub := FieldPath(tt.path)
		if base != tt.base || sub != tt.sub {
			t.Errorf("FieldPath(%q) = %q, %q, want %q, %q", tt.path, base, sub, tt.base, tt.sub)
		}
	}
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.yaml")
	content := `
kinds: [bibliographic, holdings]
columns:
  holdings: [id, barcode]
options:
  csv_delimiter: ";"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if p.Name != "local" {
		t.Errorf("Name = %q, want local", p.Name)
	}
	if !p.Accepts(hub.KindHoldings) || p.Accepts(hub.KindAuthority) {
		t.Errorf("Kinds = %v", p.Kinds)
	}
	if p.GetCSVDelimiter() != ";" {
		t.Errorf("GetCSVDelimiter() = %q", p.GetCSVDelimiter())
	}

	r := &ProfileRegistry{profiles: map[string]*Profile{}}
	if err := r.LoadFromDirectory(dir); err != nil {
		t.Fatalf("LoadFromDirectory() error = %v", err)
	}
	if _, ok := r.Get("local"); !ok {
		t.Error("LoadFromDirectory() did not register local")
	}
}

func TestMergeProfiles(t *testing.T) {
	base := &Profile{
		Name:        "summary",
		Description: "base",
		Kinds:       []hub.Kind{hub.KindBibliographic},
		Columns:     map[hub.Kind][]string{hub.KindBibliographic: {"id", "title"}},
		Options:     ProfileOptions{MultiValueSeparator: "; "},
	}
	custom := &Profile{
		Name:    "mine",
		Columns: map[hub.Kind][]string{hub.KindHoldings: {"barcode"}},
		Options: ProfileOptions{Strict: true},
	}

	merged := MergeProfiles(base, custom)
	if merged.Name != "mine" || merged.Description != "base" {
		t.Errorf("Name/Description = %q/%q", merged.Name, merged.Description)
	}
	if len(merged.Columns) != 2 {
		t.Errorf("Columns = %v, want both kinds", merged.Columns)
	}
	if merged.Options.MultiValueSeparator != "; " || !merged.Options.Strict {
		t.Errorf("Options = %+v", merged.Options)
	}
}
