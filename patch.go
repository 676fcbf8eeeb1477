package main

import (
	"os"
	"regexp"
	"strings"
)

var markerRegion = regexp.MustCompile(`\{/\*\s*SDK_EXPORTS_START\s*\*/\}[\s\S]*?\{/\*\s*SDK_EXPORTS_END\s*\*/\}`)

// replaceMarkerRegion swaps the first marker region in text for block. The
// block is inserted literally. ok is false when the document has no region.
func replaceMarkerRegion(text, block string) (next string, ok bool) {
	loc := markerRegion.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + block + text[loc[1]:], true
}

// regionEntries returns the inventory lines currently stored inside the first
// marker region, or nil if there is none.
func regionEntries(text string) []string {
	region := markerRegion.FindString(text)
	if region == "" {
		return nil
	}
	var entries []string
	for _, line := range strings.Split(region, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, string(KindValue)+":") || strings.HasPrefix(line, string(KindType)+":") {
			entries = append(entries, line)
		}
	}
	return entries
}

// diffEntries reports which lines of want are missing from have, and which
// lines of have are no longer in want.
func diffEntries(have, want []string) (added, removed []string) {
	seen := make(map[string]bool, len(have))
	for _, h := range have {
		seen[h] = true
	}
	wanted := make(map[string]bool, len(want))
	for _, w := range want {
		wanted[w] = true
		if !seen[w] {
			added = append(added, w)
		}
	}
	for _, h := range have {
		if !wanted[h] {
			removed = append(removed, h)
		}
	}
	return added, removed
}

// writeFilePreservePerms overwrites path, keeping its mode when it exists.
func writeFilePreservePerms(path string, data []byte) error {
	var mode os.FileMode = 0o644
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode() & 0o777
		if mode == 0 {
			mode = 0o644
		}
	}
	return os.WriteFile(path, data, mode)
}
