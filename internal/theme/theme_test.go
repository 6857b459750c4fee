package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: mine\npaper: #102030\n# comment\nUnknown: #FFFFFF\n"))
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "mine" {
		t.Errorf("name = %q", th.Name)
	}
	if th.Paper != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Errorf("paper = %+v", th.Paper)
	}
	if th.Caret != Default().Caret {
		t.Errorf("caret lost its default: %+v", th.Caret)
	}
}

func TestParseRejectsBadColour(t *testing.T) {
	_, err := Parse(strings.NewReader("Name: x\nPaper: red\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#11223344")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{0x11, 0x22, 0x33, 0x44}) {
		t.Fatalf("got %+v", c)
	}
	if Hex(c) != "#11223344" || Hex(color.RGBA{1, 2, 3, 255}) != "#010203" {
		t.Fatal("hex formatting mismatch")
	}
	for _, bad := range []string{"112233", "#12345", "#GGHHII"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{"light", "dark"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("loaded %q as %q", name, th.Name)
		}
	}
	if names := l.Names(); len(names) < 2 {
		t.Fatalf("names = %v", names)
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "solar.theme"), []byte("Name: solar\nPaper: #FDF6E3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	custom := Default()
	custom.Name = "dark"
	l := &Loader{ConfigDir: dir, Custom: map[string]*Theme{"dark": custom}}

	th, err := l.Load("solar")
	if err != nil || th.Name != "solar" {
		t.Fatalf("config dir theme: %v %v", th, err)
	}
	th, err = l.Load("dark")
	if err != nil || th.Name != "dark" || th == custom {
		t.Fatalf("custom theme not preferred: %v", err)
	}
	th.Name = "changed"
	if custom.Name != "dark" {
		t.Fatal("Load returned the shared custom theme")
	}
	if _, err := l.Load("nope"); err == nil {
		t.Fatal("expected error for missing theme")
	}
	th, err = l.Load(filepath.Join(dir, "solar.theme"))
	if err != nil || th.Name != "solar" {
		t.Fatalf("path load: %v %v", th, err)
	}
}

func TestResolvePrecedence(t *testing.T) {
	l := &Loader{}
	t.Setenv(EnvVar, "dark")
	th, err := l.Resolve("", "light")
	if err != nil || th.Name != "dark" {
		t.Fatalf("env should beat config: %v %v", th, err)
	}
	th, err = l.Resolve("light", "")
	if err != nil || th.Name != "light" {
		t.Fatalf("flag should beat env: %v %v", th, err)
	}
	t.Setenv(EnvVar, "")
	th, err = l.Resolve("", "")
	if err != nil || th.Name != Default().Name {
		t.Fatalf("default: %v %v", th, err)
	}
}
