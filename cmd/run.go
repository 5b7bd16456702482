package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/1pkg/kvgen/generators"
	"github.com/1pkg/kvgen/parsers"
)

// Run first parses the provided schema document, then generates the
// requested output flavor and writes it to a file inside dir.
func Run(ctx context.Context, flavor generators.Flavor, cfg generators.Config, schema, dir string) (string, error) {
	s, err := parsers.Parse(ctx, os.DirFS(filepath.Dir(schema)), filepath.Base(schema))
	if err != nil {
		return "", err
	}
	var b bytes.Buffer
	if err := generators.Generate(cfg, *s, flavor, &b); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.gen.go", flavor))
	src, err := imports.Process(path, b.Bytes(), nil)
	if err != nil {
		return "", fmt.Errorf("flavor %s output can't be formatted, %w", flavor, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("flavor %s output can't be written, %w", flavor, err)
	}
	return path, nil
}
