package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/colornode"
)

func TestMain(m *testing.M) {
	labelkit.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

// isolate points HOME at an empty dir so a developer's config is not read.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LABELPICKER_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Picker.Frontend != frontendTUI || !cfg.Picker.NamesVisible || cfg.Picker.NoneEnabled {
		t.Errorf("picker defaults = %+v", cfg.Picker)
	}
	if cfg.Picker.Initial != -1 || cfg.Picker.Title != "Labels" {
		t.Errorf("picker defaults = %+v", cfg.Picker)
	}
	if cfg.Table.Timeout != 10*time.Second {
		t.Errorf("table timeout = %v", cfg.Table.Timeout)
	}
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "labelpicker.toml")
	content := `
[table]
source = "/data/GenericAnatomyColors.ctbl"

[picker]
none_enabled = true
max_colors = 12
frontend = "SDL"

[ui]
accent_color = "#FF8800"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LABELPICKER_PICKER_MAX_COLORS", "20")

	flags := newFlagSet()
	if err := flags.Parse([]string{"--config", path, "--names=false"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Table.Source != "/data/GenericAnatomyColors.ctbl" {
		t.Errorf("table source = %q", cfg.Table.Source)
	}
	if !cfg.Picker.NoneEnabled {
		t.Error("none_enabled from file not applied")
	}
	if cfg.Picker.MaxColors != 20 {
		t.Errorf("max_colors = %d, want env override 20", cfg.Picker.MaxColors)
	}
	if cfg.Picker.NamesVisible {
		t.Error("--names=false not applied")
	}
	if cfg.Picker.Frontend != frontendSDL {
		t.Errorf("frontend = %q, want normalised sdl", cfg.Picker.Frontend)
	}
	if accent, _ := cfg.UI.Accent(); accent != 0xFF8800 {
		t.Errorf("accent = %#x", accent)
	}
}

func TestLoadUnchangedFlagsKeepFileValues(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "labelpicker.toml")
	if err := os.WriteFile(path, []byte("[picker]\nfrontend = \"sdl\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := newFlagSet()
	if err := flags.Parse([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Picker.Frontend != frontendSDL {
		t.Errorf("frontend = %q, the flag default overrode the file", cfg.Picker.Frontend)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"frontend":   "LABELPICKER_PICKER_FRONTEND=gtk",
		"max_colors": "LABELPICKER_PICKER_MAX_COLORS=-3",
		"initial":    "LABELPICKER_PICKER_INITIAL=-2",
		"accent":     "LABELPICKER_UI_ACCENT_COLOR=#12345",
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			k, v, _ := strings.Cut(env, "=")
			t.Setenv(k, v)
			if _, err := Load(nil); err == nil {
				t.Errorf("Load() accepted %s", env)
			}
		})
	}
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	isolate(t)
	t.Setenv("LABELPICKER_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := Load(nil); err == nil {
		t.Error("Load() ignored a missing explicit config file")
	}
}

const testCtbl = `# test table
0 Background 0 0 0 0
1 Tissue 128 174 128 255
2 Bone 241 214 145 255
`

func TestLoadTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ctbl")
	if err := os.WriteFile(path, []byte(testCtbl), 0o644); err != nil {
		t.Fatal(err)
	}

	node, err := loadTable(context.Background(), TableConfig{Source: path})
	if err != nil {
		t.Fatal(err)
	}
	if node.NumberOfColors() != 3 || node.ColorName(2) != "Bone" {
		t.Errorf("loaded %d colors, name 2 = %q", node.NumberOfColors(), node.ColorName(2))
	}
}

func TestLoadTableOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testCtbl)
	}))
	defer srv.Close()

	node, err := loadTable(context.Background(), TableConfig{Source: srv.URL + "/tables/test.ctbl", Timeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	if node.TypeString() != colornode.TypeRemote {
		t.Errorf("type = %q, want remote", node.TypeString())
	}
}

func TestLoadTableEmptySource(t *testing.T) {
	if _, err := loadTable(context.Background(), TableConfig{}); !errors.Is(err, errNoTable) {
		t.Errorf("err = %v, want errNoTable", err)
	}
}

func TestRunWithoutTableFails(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Picker: PickerConfig{Frontend: frontendTUI}, Log: LogConfig{Level: "error"}}
	if code := run(context.Background(), cfg, &out); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("run() printed %q on failure", out.String())
	}
}

func TestNewBoxAppliesFlags(t *testing.T) {
	node, err := colornode.ParseCtbl(strings.NewReader(testCtbl), "test")
	if err != nil {
		t.Fatal(err)
	}

	box := newBox(PickerConfig{NoneEnabled: true, NamesVisible: false, MaxColors: 2})
	defer box.Close()
	box.SetColorSource(node)

	list := box.List()
	if list.Count() != 3 {
		t.Fatalf("rows = %d, want None plus 2 capped colors", list.Count())
	}
	if list.ItemText(1) != "" {
		t.Errorf("name shown while hidden: %q", list.ItemText(1))
	}
}
