package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/xuri/excelize/v2"

	"github.com/c360studio/idsgen/compiler"
	"github.com/c360studio/idsgen/config"
	"github.com/c360studio/idsgen/excel"
	"github.com/c360studio/idsgen/ids"
)

// App runs workbook conversions according to the loaded configuration.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	// sheet overrides the requirement sheet named on the settings sheet.
	sheet string
}

// NewApp creates the application.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, logger: logger}
}

// ConvertAll converts every workbook in the input directory matching the
// configured pattern. Conversion failures are logged per workbook; the first
// failure is returned after all workbooks have been attempted.
func (a *App) ConvertAll() error {
	paths, err := a.findWorkbooks()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		a.logger.Warn("No workbooks found",
			slog.String("dir", a.cfg.Input.Dir),
			slog.String("pattern", a.cfg.Input.Pattern))
		return nil
	}

	var firstErr error
	for _, path := range paths {
		if err := a.ConvertWorkbook(path); err != nil {
			a.logger.Error("Conversion failed",
				slog.String("workbook", path),
				slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = fmt.Errorf("converting %s: %w", path, err)
			}
		}
	}
	return firstErr
}

// ConvertWorkbook converts one workbook into its IDS files, one file per
// file-separator value combination.
func (a *App) ConvertWorkbook(path string) error {
	a.logger.Info("Converting workbook", slog.String("workbook", path))

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	settings, err := excel.ReadSettings(f)
	if err != nil {
		return err
	}
	if a.sheet != "" {
		settings.SheetName = a.sheet
	}
	tbl, cls, versionUsed, err := excel.ReadRequirements(f, settings)
	if err != nil {
		return err
	}

	comp := compiler.New(compiler.Options{
		SeparateBy:        settings.SeparateBy,
		EntityBased:       settings.EntityBased,
		VersionColumnUsed: versionUsed,
	})
	specs, err := comp.Compile(tbl, cls)
	if err != nil {
		return err
	}
	a.logger.Debug("Compiled specifications",
		slog.String("workbook", path),
		slog.Int("count", len(specs)))

	if err := os.MkdirAll(a.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	builder := ids.NewBuilder(comp.PropertyDescriptions())
	parts := compiler.PartitionSpecifications(specs, settings.SeparateBy)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for _, key := range compiler.PartitionKeys(parts) {
		part := parts[key]
		doc, err := builder.Build(settings.Info, part.General, part.Specifications)
		if err != nil {
			return err
		}

		name := base + "_" + settings.SheetName + strings.ReplaceAll(key, "/", "-") + ".ids"
		outPath := filepath.Join(a.cfg.Output.Dir, name)
		if err := a.writeDocument(outPath, doc); err != nil {
			return err
		}
		a.logger.Info("Wrote IDS file",
			slog.String("path", outPath),
			slog.Int("specifications", len(doc.Specifications)))
	}
	return nil
}

func (a *App) writeDocument(path string, doc *ids.Document) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := ids.Write(out, doc); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return out.Close()
}

// findWorkbooks lists the workbooks under the input directory matching the
// configured glob pattern. Excel lock files are skipped.
func (a *App) findWorkbooks() ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(a.cfg.Input.Dir, a.cfg.Input.Pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", a.cfg.Input.Pattern, err)
	}

	var paths []string
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), "~$") {
			continue
		}
		if info, err := os.Stat(m); err != nil || info.IsDir() {
			continue
		}
		paths = append(paths, m)
	}
	return paths, nil
}

// matchesPattern reports whether the path names a workbook the configured
// pattern selects, relative to the input directory.
func (a *App) matchesPattern(path string) bool {
	if strings.HasPrefix(filepath.Base(path), "~$") {
		return false
	}
	rel, err := filepath.Rel(a.cfg.Input.Dir, path)
	if err != nil {
		return false
	}
	ok, err := doublestar.PathMatch(a.cfg.Input.Pattern, rel)
	return err == nil && ok
}
