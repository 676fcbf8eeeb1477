package main

import (
	"context"
	"fmt"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// isGoSource reports whether path names a Go package (a directory or a .go
// file) rather than a TypeScript entry module.
func isGoSource(path string) bool {
	if filepath.Ext(path) == ".go" {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ScanGoPackage lists the exported identifiers of the Go package at path.
// Type names are classified as types; constants, variables and functions
// as values.
func ScanGoPackage(ctx context.Context, path string) (Inventory, error) {
	dir := path
	if filepath.Ext(path) == ".go" {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		dir = filepath.Dir(path)
	}
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go package found in %s", dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%s", pkg.Errors[0])
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("no type information for %s", pkg.PkgPath)
	}

	set := make(entrySet)
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		if _, ok := obj.(*types.TypeName); ok {
			set.add(KindType, name)
			continue
		}
		set.add(KindValue, name)
	}
	return set.sorted(), nil
}
