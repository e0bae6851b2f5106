package internal

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"os"
	"testing"
)

var colorRed = color.NRGBA{R: 255, A: 255}

func TestMain(m *testing.M) {
	SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.raw); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestInternalLoggerDefaultsToError(t *testing.T) {
	l := GetInternalLogger()
	if l.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatal("internal logger should not emit warnings by default")
	}
	if !l.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("internal logger should emit errors by default")
	}
}

func TestLocalize(t *testing.T) {
	if err := SetLanguage("en"); err != nil {
		t.Fatalf("SetLanguage(en): %v", err)
	}
	if got := Localize(MsgLabelNone, "fallback"); got != "None" {
		t.Errorf("Localize(LabelNone) = %q, want None", got)
	}

	if err := SetLanguage("de-AT"); err != nil {
		t.Fatalf("SetLanguage(de-AT): %v", err)
	}
	defer SetLanguage("en")

	if got := Localize(MsgLabelNone, "fallback"); got != "Keine" {
		t.Errorf("Localize(LabelNone) in German = %q, want Keine", got)
	}
	if got := Localize("DoesNotExist", "fallback"); got != "fallback" {
		t.Errorf("unknown message = %q, want fallback", got)
	}
}

func TestSetLanguageRejectsGarbage(t *testing.T) {
	if err := SetLanguage("not a language!"); err == nil {
		t.Fatal("expected an error for an unparsable tag")
	}
}

func TestLanguageFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := LanguageFromEnv(); got != "de-DE" {
		t.Errorf("LanguageFromEnv() = %q, want de-DE", got)
	}

	t.Setenv("LC_ALL", "C")
	t.Setenv("LANG", "")
	if got := LanguageFromEnv(); got != "" {
		t.Errorf("LanguageFromEnv() = %q, want empty", got)
	}
}

func TestRenderSwatchFillsWithColor(t *testing.T) {
	img, err := RenderSwatch(&colorRed, 16)
	if err != nil {
		t.Fatalf("RenderSwatch: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	c := img.RGBAAt(8, 8)
	if c.A == 0 {
		t.Fatal("center pixel is transparent")
	}
	if c.R <= c.G || c.R <= c.B {
		t.Errorf("center pixel %v is not red", c)
	}
}

func TestRenderSwatchNoColorLeavesCenterEmpty(t *testing.T) {
	img, err := RenderSwatch(nil, 32)
	if err != nil {
		t.Fatalf("RenderSwatch: %v", err)
	}
	// Off the diagonal the frame is hollow.
	if c := img.RGBAAt(10, 10); c.A != 0 {
		t.Errorf("pixel inside empty frame = %v, want transparent", c)
	}
}
