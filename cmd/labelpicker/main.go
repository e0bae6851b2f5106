// Command labelpicker loads a color table and lets the user pick a label
// color from it, in an SDL window or in the terminal. The selection is
// printed as "index<TAB>name<TAB>#rrggbbaa".
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/tui"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/ui"
	"github.com/spf13/pflag"
)

func main() {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, "labelpicker:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, cfg, os.Stdout)
	stop()
	os.Exit(code)
}

// selection is what either front-end reports back.
type selection struct {
	Index int
	Color labelkit.Color
	Name  string
}

func run(ctx context.Context, cfg Config, out io.Writer) int {
	if cfg.Log.Path != "" {
		labelkit.SetLogPath(cfg.Log.Path)
	}
	labelkit.SetRawLogLevel(cfg.Log.Level)
	defer labelkit.CloseLogger()

	logger := labelkit.GetLogger()

	if cfg.UI.Language != "" {
		if err := labelkit.SetLanguage(cfg.UI.Language); err != nil {
			logger.Warn("Ignoring language", "language", cfg.UI.Language, "error", err)
		}
	}

	node, err := loadTable(ctx, cfg.Table)
	if err != nil {
		logger.Error("Failed to load color table", "source", cfg.Table.Source, "error", err)
		fmt.Fprintln(os.Stderr, "labelpicker:", err)
		return 1
	}
	logger.Info("Color table loaded", "source", cfg.Table.Source, "id", node.ID(), "colors", node.NumberOfColors())

	box := newBox(cfg.Picker)
	defer box.Close()
	box.SetColorSource(node)
	if cfg.Picker.Initial >= 0 {
		box.SetCurrentColor(cfg.Picker.Initial)
	}

	box.AddListener(selectionLogger{})

	var sel *selection
	switch cfg.Picker.Frontend {
	case frontendSDL:
		sel, err = runSDL(cfg, box)
	default:
		sel, err = runTUI(cfg, box)
	}

	if labelkit.IsCancelled(err) {
		logger.Info("Selection cancelled")
		return 1
	}
	if err != nil {
		logger.Error("Picker failed", "error", err)
		fmt.Fprintln(os.Stderr, "labelpicker:", err)
		return 1
	}

	fmt.Fprintf(out, "%d\t%s\t%s\n", sel.Index, sel.Name, sel.Color.Hex())
	return 0
}

func newBox(cfg PickerConfig) *labelkit.LabelComboBox {
	box := labelkit.NewLabelComboBox(nil)
	box.SetMaximumColorCount(cfg.MaxColors)
	box.SetNoneEnabled(cfg.NoneEnabled)
	box.SetColorNameVisible(cfg.NamesVisible)
	return box
}

func runTUI(cfg Config, box *labelkit.LabelComboBox) (*selection, error) {
	res, err := tui.Run(cfg.Picker.Title, box)
	if err != nil {
		return nil, err
	}
	return &selection{Index: res.Index, Color: res.Color, Name: res.Name}, nil
}

func runSDL(cfg Config, box *labelkit.LabelComboBox) (*selection, error) {
	accent, _ := cfg.UI.Accent()
	if err := ui.Init(ui.Options{
		WindowTitle:          cfg.Picker.Title,
		ShowBackground:       cfg.UI.Background,
		FontPath:             cfg.UI.FontPath,
		PrimaryThemeColorHex: accent,
		HardwareKeysDevice:   cfg.UI.HardwareKeys,
		Language:             cfg.UI.Language,
	}); err != nil {
		return nil, err
	}
	defer ui.Close()

	res, err := ui.LabelPicker(cfg.Picker.Title, box, ui.PickerSettings{})
	if err != nil {
		return nil, err
	}
	return &selection{Index: res.Index, Color: res.Color, Name: res.Name}, nil
}

// selectionLogger records every change the widget reports.
type selectionLogger struct{}

func (selectionLogger) ColorChanged(c labelkit.Color) {
	labelkit.GetLogger().Debug("Color changed", "color", c.Hex())
}

func (selectionLogger) ColorNameChanged(name string) {
	labelkit.GetLogger().Debug("Color name changed", "name", name)
}

func (selectionLogger) IndexChanged(index int) {
	labelkit.GetLogger().Debug("Index changed", "index", index)
}
