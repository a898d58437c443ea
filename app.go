package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"flywaydeck/config"
	"flywaydeck/deck"
	"flywaydeck/export"
	"flywaydeck/logger"
)

// App generates the deck and any configured handouts.
type App struct {
	out    io.Writer
	ppt    *export.PPTService
	logger *logger.Logger
}

// NewApp wires the command to its output stream and presentation renderer.
func NewApp(out io.Writer, ppt *export.PPTService) *App {
	return &App{
		out:    out,
		ppt:    ppt,
		logger: logger.NewLogger(),
	}
}

// Run returns the process exit code.
func (a *App) Run(cfgPath string) int {
	defer a.logger.Close()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", WrapError("config", "Load", err))
		return 1
	}
	if cfg.LogDir != "" {
		if err := a.logger.Init(cfg.LogDir); err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", WrapError("logger", "Init", err))
			return 1
		}
	}

	err = a.generate(cfg)
	if errors.Is(err, export.ErrBackendUnavailable) {
		a.logger.Errorf(err, "backend check failed")
		fmt.Fprintln(a.out, "Please install the presentation backend first:")
		fmt.Fprintf(a.out, "go get %s\n", export.BackendModule)
		return 1
	}
	if err != nil {
		a.logger.Errorf(err, "generation failed")
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *App) generate(cfg config.Config) error {
	d := deck.FlywayDB2()
	a.logger.Logf("rendering %q with %d slides", d.Title, len(d.Slides))

	path, err := a.ppt.Save(d, cfg.OutputDir, cfg.FileName)
	if err != nil {
		return WrapError("ppt", "Save", err)
	}

	summary, err := export.InspectPPTX(path)
	if err != nil {
		return WrapError("ppt", "Inspect", err)
	}
	if len(summary.Slides) != deck.SlideCount {
		return WrapError("ppt", "Inspect",
			fmt.Errorf("%s has %d slides, want %d", path, len(summary.Slides), deck.SlideCount))
	}
	a.logger.Logf("wrote %s (%d slides)", path, len(summary.Slides))
	fmt.Fprintf(a.out, "✅ Presentation created: %s\n", path)

	if !cfg.Handouts.Any() {
		a.logger.Log("no handouts configured")
		return nil
	}
	return a.writeHandouts(d, cfg)
}

type handout struct {
	enabled bool
	suffix  string
	render  func(*deck.Deck) ([]byte, error)
}

func (a *App) writeHandouts(d *deck.Deck, cfg config.Config) error {
	base := strings.TrimSuffix(cfg.FileName, filepath.Ext(cfg.FileName))
	handouts := []handout{
		{cfg.Handouts.Excel, "-Comparison.xlsx", export.NewExcelService().ExportComparison},
		{cfg.Handouts.Word, "-Handout.docx", export.NewWordService().ExportHandout},
		{cfg.Handouts.PDF, "-Handout.pdf", export.NewPDFService().ExportHandout},
	}
	for _, h := range handouts {
		if !h.enabled {
			continue
		}
		data, err := h.render(d)
		if err != nil {
			return WrapError("handout", h.suffix, err)
		}
		path := filepath.Join(cfg.OutputDir, base+h.suffix)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return WrapError("handout", h.suffix, err)
		}
		a.logger.Logf("wrote %s (%d bytes)", path, len(data))
		fmt.Fprintf(a.out, "✅ Handout created: %s\n", path)
	}
	return nil
}
