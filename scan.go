package main

import (
	"regexp"
	"sort"
	"strings"
)

// Kind classifies an export as a runtime value or a type-only declaration.
type Kind string

const (
	KindValue Kind = "value"
	KindType  Kind = "type"
)

// ExportEntry is a single classified export name.
type ExportEntry struct {
	Kind Kind
	Name string
}

// String returns the inventory line for the entry, e.g. "value:createClient".
func (e ExportEntry) String() string {
	return string(e.Kind) + ":" + e.Name
}

// Inventory is a sorted, duplicate-free list of export entries.
type Inventory []ExportEntry

// Keys returns the inventory lines in order.
func (inv Inventory) Keys() []string {
	keys := make([]string, len(inv))
	for i, entry := range inv {
		keys[i] = entry.String()
	}
	return keys
}

type entrySet map[string]ExportEntry

func (s entrySet) add(kind Kind, name string) {
	entry := ExportEntry{Kind: kind, Name: name}
	s[entry.String()] = entry
}

// sorted orders entries by byte-wise comparison of the full "kind:name" key.
func (s entrySet) sorted() Inventory {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	inv := make(Inventory, len(keys))
	for i, key := range keys {
		inv[i] = s[key]
	}
	return inv
}

const listBody = `(?:/\*[\s\S]*?\*/|//[^\n]*|[^{}])*`

var (
	// Outside comments a list body cannot contain braces, so one match never
	// spans two export statements while "{@link x}" in a comment still does.
	reExportFrom = regexp.MustCompile(`export\s+(type\s+)?\{(` + listBody + `)\}\s+from\s+["'][^"']+["'];`)
	reLocalNamed = regexp.MustCompile(`export\s+(type\s+)?\{(` + listBody + `)\};`)

	directExports = []struct {
		re   *regexp.Regexp
		kind Kind
	}{
		{regexp.MustCompile(`export\s+const\s+([A-Za-z_$][\w$]*)`), KindValue},
		{regexp.MustCompile(`export\s+function\s+([A-Za-z_$][\w$]*)`), KindValue},
		{regexp.MustCompile(`export\s+class\s+([A-Za-z_$][\w$]*)`), KindValue},
		{regexp.MustCompile(`export\s+type\s+([A-Za-z_$][\w$]*)`), KindType},
		{regexp.MustCompile(`export\s+interface\s+([A-Za-z_$][\w$]*)`), KindType},
	}

	blockComment  = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	lineComment   = regexp.MustCompile(`(?m)//.*$`)
	typeQualifier = regexp.MustCompile(`^type\s+`)
	aliasClause   = regexp.MustCompile(`\bas\s+([A-Za-z_$][\w$]*)$`)
)

// ScanExports collects the exports declared in a TypeScript entry module.
//
// This is pattern matching over the raw text, not a parser: declarations
// the patterns do not recognize are silently left out.
func ScanExports(source string) Inventory {
	set := make(entrySet)
	for _, re := range []*regexp.Regexp{reExportFrom, reLocalNamed} {
		for _, m := range re.FindAllStringSubmatch(source, -1) {
			kind := KindValue
			if m[1] != "" {
				kind = KindType
			}
			for _, entry := range splitExportNames(m[2], kind) {
				set.add(entry.Kind, entry.Name)
			}
		}
	}
	for _, direct := range directExports {
		for _, m := range direct.re.FindAllStringSubmatch(source, -1) {
			set.add(direct.kind, m[1])
		}
	}
	return set.sorted()
}

// splitExportNames turns the inside of an export list such as
// "type Foo, bar as baz, // note" into entries. Names carry the list's kind
// unless they have their own "type" qualifier.
func splitExportNames(raw string, kind Kind) []ExportEntry {
	raw = blockComment.ReplaceAllString(raw, "")
	raw = lineComment.ReplaceAllString(raw, "")
	var entries []ExportEntry
	for _, part := range strings.Split(raw, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		entryKind := kind
		if typeQualifier.MatchString(token) {
			entryKind = KindType
			token = strings.TrimSpace(typeQualifier.ReplaceAllString(token, ""))
		}
		if m := aliasClause.FindStringSubmatch(token); m != nil {
			entries = append(entries, ExportEntry{Kind: entryKind, Name: m[1]})
			continue
		}
		if fields := strings.Fields(token); len(fields) > 0 {
			entries = append(entries, ExportEntry{Kind: entryKind, Name: fields[0]})
		}
	}
	return entries
}
