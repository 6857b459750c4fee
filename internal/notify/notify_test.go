package notify

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/paintbox/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func recorder(out *[]sent) Sender {
	return func(title, body string, opts platform.Options) error {
		*out = append(*out, sent{title, body, opts})
		return nil
	}
}

func TestNotifierDisabledByDefault(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Save("a.png")
	n.Copy("")
	n.Export("a.pdf")
	if len(got) != 0 {
		t.Fatalf("sent %d notifications while disabled", len(got))
	}
	var nilNotifier *Notifier
	nilNotifier.Save("a.png")
	nilNotifier.Enable(EventSave, true)
}

func TestNilNotifierAcceptsSender(t *testing.T) {
	var got []sent
	var n *Notifier
	if n.WithSender(recorder(&got)) != nil {
		t.Fatalf("WithSender on nil notifier returned non-nil")
	}
	n.WithSender(recorder(&got)).Copy("drawing")
	if len(got) != 0 {
		t.Fatalf("nil notifier sent %d notifications", len(got))
	}
}

func TestNotifierSaveUsesFileAsIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Enable(EventSave, true)
	n.Enable(EventExport, true)
	n.Save(path)
	n.Export(path)
	if len(got) != 2 {
		t.Fatalf("sent %d notifications", len(got))
	}
	if got[0].title != "Paintbox" || got[0].body != "Saved "+path || got[0].opts.IconPath != path {
		t.Fatalf("save notification = %+v", got[0])
	}
	if got[1].opts.IconPath != "" || !strings.HasPrefix(got[1].body, "Exported ") {
		t.Fatalf("export notification = %+v", got[1])
	}
}

func TestNotifierCopyDefaultDetail(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Enable(EventCopy, true)
	n.Copy("  ")
	if len(got) != 1 || got[0].body != "Copied drawing to clipboard" {
		t.Fatalf("got %+v", got)
	}
}

func TestNotifierSendErrorIsLogged(t *testing.T) {
	n := New(DefaultPreferences()).WithSender(func(string, string, platform.Options) error {
		return errors.New("no bus")
	})
	n.Enable(EventCopy, true)
	n.Copy("x")
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("PAINTBOX_NOTIFY_TITLE", "Sketch")
	t.Setenv("PAINTBOX_NOTIFY_EXPORT_TEXT", "PDF ready: %s")
	prefs := LoadPreferences()
	if prefs.Title != "Sketch" {
		t.Fatalf("title = %q", prefs.Title)
	}
	if prefs.Events[EventExport].Template != "PDF ready: %s" {
		t.Fatalf("export template = %q", prefs.Events[EventExport].Template)
	}
	if prefs.Events[EventSave].Template != "Saved %s" {
		t.Fatalf("save template changed: %q", prefs.Events[EventSave].Template)
	}
}
