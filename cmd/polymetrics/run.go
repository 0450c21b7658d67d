// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/polymetrics/internal/report"
	"github.com/katalvlaran/polymetrics/internal/survey"
	"go.uber.org/zap"
)

func load(path string, log *zap.Logger) (*report.Report, error) {
	s, err := survey.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug("survey loaded", zap.String("path", path), zap.Int("polygons", len(s.Polygons)))

	return report.Build(s, log)
}

func runReport(w io.Writer, path string, log *zap.Logger) error {
	r, err := load(path, log)
	if err != nil {
		return err
	}

	return r.WriteText(w)
}

func runChart(path, out, title string, log *zap.Logger) error {
	r, err := load(path, log)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := r.RenderHTML(f, title); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	log.Info("chart written", zap.String("path", out))

	return nil
}

// runValidate fails on the first polygon that cannot be built or whose
// angles are undefined.
func runValidate(w io.Writer, path string, log *zap.Logger) error {
	r, err := load(path, log)
	if err != nil {
		return err
	}
	for _, e := range r.Entries {
		if e.AngleErr != nil {
			return fmt.Errorf("polygon %q: %w", e.Name, e.AngleErr)
		}
	}
	fmt.Fprintf(w, "ok: %d polygons\n", len(r.Entries))

	return nil
}
