package main

import "fmt"

// UnknownArgumentError reports a command-line token that is not one of the
// recognized flags or subcommands.
type UnknownArgumentError struct {
	Arg string
}

func (e *UnknownArgumentError) Error() string {
	return "Unknown argument: " + e.Arg
}

// MissingMarkerError reports a document without an SDK_EXPORTS_START/END
// region. The tool never creates the markers itself.
type MissingMarkerError struct {
	Path string
}

func (e *MissingMarkerError) Error() string {
	return fmt.Sprintf("Marker block not found in %s. Add SDK_EXPORTS_START/END markers first.", e.Path)
}

// DriftError reports that the rendered inventory differs from the document on
// disk. API and SDKIndex hold the values as the operator supplied them so the
// remediation command can be pasted back verbatim.
type DriftError struct {
	API      string
	SDKIndex string
}

func (e *DriftError) Error() string {
	return "SDK API reference drift detected.\n" + e.Remedy()
}

// Remedy returns the command that rewrites the inventory in place.
func (e *DriftError) Remedy() string {
	return fmt.Sprintf("Run: %s --update --api %s --sdk-index %s", appName, e.API, e.SDKIndex)
}
