// # sdk-exports
//
// `sdk-exports` keeps the export inventory printed in an SDK reference page
// in sync with what the SDK's entry module actually exports. It is meant to
// run as a CI step next to the docs build: it fails when the page has drifted
// and can rewrite the page in place.
//
// Key capabilities:
//
//   - scan a TypeScript entry module (`index.ts`) for `export { … }`,
//     `export { … } from "…"`, `export type { … }` and direct
//     `export const|function|class|type|interface` declarations.
//   - scan a Go package (directory or `.go` file) for its exported
//     identifiers through `golang.org/x/tools/go/packages`.
//   - classify each name as `value` or `type` and render the sorted list as a
//     fenced `text sdk-exports` block between two marker comments.
//   - check mode (default) exits 1 on any byte-level difference and prints the
//     command that fixes it; `--update` rewrites the marker region.
//
// ## Usage
//
//	sdk-exports [--update] [--api path] [--sdk-index path]
//
// Examples:
//
//   - Check the default layout from the docs directory:
//
//     sdk-exports
//
//   - Regenerate the inventory after changing the SDK:
//
//     sdk-exports --update --api sdk/api-reference.mdx --sdk-index ../sdk/src/index.ts
//
// ## Marker Region
//
// The page must already contain the markers; the tool only ever replaces the
// text between them (markers included):
//
//	{/* SDK_EXPORTS_START */}
//	```text sdk-exports
//	source: ../../sdk/src/index.ts
//	type:ClientOptions
//	value:createClient
//	```
//	{/* SDK_EXPORTS_END */}
//
// The `source:` line is the scanned path relative to the page's directory.
//
// ## Supported Flags
//
//   - `--update`: write the rendered block back to the page.
//   - `--api PATH`: page holding the marker region (default
//     `sdk/api-reference.mdx`).
//   - `--sdk-index PATH`: entry module to scan (default
//     `../sdk/src/index.ts`).
//
// Any other argument is rejected with `Unknown argument: <token>` before a
// file is read.
//
// ## Configuration
//
// `--api` and `--sdk-index` may also come from `SDK_EXPORTS_API`,
// `SDK_EXPORTS_SDK_INDEX`, or an `.sdk-exports.yaml` file in the working
// directory (keys `api`, `sdk-index`, `log-level`). Flags take precedence over
// the environment, which takes precedence over the file. `--update` is only
// read from the command line. Set `SDK_EXPORTS_LOG_LEVEL=debug` to see which
// entries were added or removed when a check fails.
package main
