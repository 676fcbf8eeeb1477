package main

import (
	"path/filepath"
	"strings"
)

const (
	startMarker = "{/* SDK_EXPORTS_START */}"
	endMarker   = "{/* SDK_EXPORTS_END */}"
	fenceOpen   = "```text sdk-exports"
	fenceClose  = "```"
)

// RenderBlock produces the marker-delimited inventory block. The result has
// no trailing newline; whatever followed the end marker in the document is
// preserved by the patcher.
func RenderBlock(inv Inventory, label string) string {
	lines := make([]string, 0, len(inv)+5)
	lines = append(lines, startMarker, fenceOpen, "source: "+label)
	lines = append(lines, inv.Keys()...)
	lines = append(lines, fenceClose, endMarker)
	return strings.Join(lines, "\n")
}

// sourceLabel returns the source path as seen from the document's directory.
func sourceLabel(apiPath, sourcePath string) string {
	rel, err := filepath.Rel(filepath.Dir(apiPath), sourcePath)
	if err != nil || rel == "" || rel == "." {
		return filepath.Base(sourcePath)
	}
	return filepath.ToSlash(rel)
}
