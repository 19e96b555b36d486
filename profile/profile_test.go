package profile

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })
	return dir
}

func TestSaveLoadDelete(t *testing.T) {
	dir := useTempConfig(t)

	p := &mapping.Profile{
		Name:    "Local Catalogue",
		Kinds:   []hub.Kind{hub.KindBibliographic},
		Columns: map[hub.Kind][]string{hub.KindBibliographic: {"id", "title"}},
		Options: mapping.ProfileOptions{MultiValueSeparator: "; "},
	}
	if err := Save(p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	path, _ := ProfilePath("Local Catalogue")
	if want := filepath.Join(dir, "profiles", "local-catalogue.yaml"); path != want {
		t.Errorf("ProfilePath() = %q, want %q", path, want)
	}
	if !Exists("local catalogue") {
		t.Error("Exists() = false after Save")
	}

	names, err := List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"local-catalogue"}) {
		t.Errorf("List() = %q", names)
	}

	loaded, err := Load("local-catalogue")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded.Columns, p.Columns) || loaded.GetMultiValueSeparator() != "; " {
		t.Errorf("Load() = %+v", loaded)
	}

	if err := Delete("local-catalogue"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if Exists("local-catalogue") {
		t.Error("Exists() = true after Delete")
	}
	if err := Delete("local-catalogue"); err == nil {
		t.Error("Delete() of missing profile error = nil")
	}
}

func TestListWithoutDirectory(t *testing.T) {
	useTempConfig(t)
	names, err := List()
	if err != nil || len(names) != 0 {
		t.Errorf("List() = %q, %v, want empty", names, err)
	}
}

func TestResolve(t *testing.T) {
	useTempConfig(t)

	p, err := Resolve("summary")
	if err != nil {
		t.Fatalf("Resolve(summary) error = %v", err)
	}
	if p.Name != "summary" {
		t.Errorf("Name = %q", p.Name)
	}

	override := &mapping.Profile{Name: "summary", Options: mapping.ProfileOptions{Strict: true}}
	if err := Save(override); err != nil {
		t.Fatal(err)
	}
	merged, err := Resolve("summary")
	if err != nil {
		t.Fatalf("Resolve(summary) error = %v", err)
	}
	if !merged.Options.Strict || len(merged.Fields) == 0 {
		t.Errorf("merged profile = %+v, want embedded fields with strict option", merged)
	}

	if _, err := Resolve("nope"); err == nil {
		t.Error("Resolve(nope) error = nil")
	}
}

func TestProfilePathRejectsSeparators(t *testing.T) {
	useTempConfig(t)
	if _, err := ProfilePath("../etc"); err == nil {
		t.Error("ProfilePath(../etc) error = nil")
	}
	if _, err := ProfilePath(" "); err == nil {
		t.Error("ProfilePath(blank) error = nil")
	}
}
