package domain

import "strings"

// ModuleFormat identifies the module format of a bundler output.
type ModuleFormat string

const (
	// FormatCommonJS is the CommonJS (require/exports) format.
	FormatCommonJS ModuleFormat = "cjs"
	// FormatESM is the native ES module format.
	FormatESM ModuleFormat = "esm"
	// FormatUMD is the universal format usable as a script include or an import.
	FormatUMD ModuleFormat = "umd"
)

// OutputDescriptor describes one file the bundler should emit.
// Constructed fresh per assembly; never persisted.
type OutputDescriptor struct {
	// File is the output path, relative to the package directory.
	File string `json:"file"`

	// Format is the module format of the output.
	Format ModuleFormat `json:"format"`

	// Sourcemap controls whether a sourcemap is emitted alongside the file.
	Sourcemap bool `json:"sourcemap"`

	// Banner is prepended verbatim to the output file.
	Banner string `json:"banner,omitzero"`

	// Footer is appended verbatim to the output file. UMD builds use it to
	// attach the exported symbols to a global namespace object.
	Footer string `json:"footer,omitzero"`

	// Name is the global variable a UMD build assigns its exports to.
	Name string `json:"name,omitzero"`

	// Minify marks the output for minification.
	Minify bool `json:"minify,omitzero"`
}

// BundleConfig is one bundler invocation: a single entry point with one or
// more outputs and a list of externals left unresolved in the bundle.
type BundleConfig struct {
	Input    string             `json:"input"`
	External []string           `json:"external,omitzero"`
	Outputs  []OutputDescriptor `json:"output"`
}

// MinifiedPath derives the minified sibling of an output path by inserting
// ".min" before the extension, e.g. "dist/filters.js" -> "dist/filters.min.js".
func MinifiedPath(path string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + ".min" + path[i:]
	}
	return path + ".min"
}
