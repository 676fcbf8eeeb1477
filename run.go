package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
}

func run(argv []string, stdout, stderr io.Writer) error {
	if err := checkArgs(argv); err != nil {
		return err
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, cfg settings) error {
	log := newLogger(app.stderr, cfg.logLevel)
	out := newPrinter(app.stdout, app.stderr)

	apiPath, err := filepath.Abs(cfg.api)
	if err != nil {
		return err
	}
	sdkPath, err := filepath.Abs(cfg.sdkIndex)
	if err != nil {
		return err
	}
	log.Debug("resolved paths", "api", apiPath, "sdk_index", sdkPath, "update", cfg.update)

	apiText, err := os.ReadFile(apiPath)
	if err != nil {
		return err
	}
	inv, err := scanSource(ctx, sdkPath)
	if err != nil {
		return err
	}
	label := sourceLabel(apiPath, sdkPath)
	log.Debug("scanned exports", "source", label, "entries", len(inv))

	block := RenderBlock(inv, label)
	current := string(apiText)
	next, ok := replaceMarkerRegion(current, block)
	if !ok {
		return &MissingMarkerError{Path: apiPath}
	}

	if cfg.update {
		if err := writeFilePreservePerms(apiPath, []byte(next)); err != nil {
			return fmt.Errorf("writing %s: %w", apiPath, err)
		}
		out.Success("Updated export inventory in %s", apiPath)
		return nil
	}

	if next != current {
		added, removed := diffEntries(regionEntries(current), inv.Keys())
		log.Debug("inventory drift", "added", added, "removed", removed)
		return &DriftError{API: cfg.api, SDKIndex: cfg.sdkIndex}
	}
	out.Success("SDK API reference export inventory is up to date.")
	return nil
}

// scanSource picks the scanner for the entry module at path.
func scanSource(ctx context.Context, path string) (Inventory, error) {
	if isGoSource(path) {
		return ScanGoPackage(ctx, path)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ScanExports(string(text)), nil
}
