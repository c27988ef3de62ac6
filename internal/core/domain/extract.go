package domain

// ExtractConfig parameterizes one invocation of the declaration extractor
// for a single package.
type ExtractConfig struct {
	// PackageName is the package being extracted, for reporting.
	PackageName string

	// EntryPath is the compiled declaration entry file
	// (<outDir>/<package>/src/index.d.ts).
	EntryPath string

	// RollupPath is where the rolled-up declaration file is written
	// (<package>/index.d.ts).
	RollupPath string

	// TsconfigPath is the workspace compiler configuration the extraction
	// runs under. Invocations sharing a tsconfig share compiler state.
	TsconfigPath string

	// SuppressInfo silences the tool's informational diagnostics.
	SuppressInfo bool
}

// ExtractReport is the result of a completed extractor run. A run that
// crashed produces an error instead of a report.
type ExtractReport struct {
	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
}

// OK reports whether the extraction completed without errors.
// Warnings alone do not fail a run.
func (r ExtractReport) OK() bool {
	return r.ErrorCount == 0
}
