package domain

// WorkspacePackage is one package discovered by the monorepo lister.
type WorkspacePackage struct {
	// Name is the package name as reported by the lister.
	Name string

	// Location is the absolute path of the package directory.
	Location string

	// Manifest is the package's parsed package.json.
	Manifest *PackageManifest
}

// CompilerSettings is the subset of the workspace tsconfig smelt cares about.
type CompilerSettings struct {
	// OutDir is the directory, relative to the workspace root, where the
	// compiler emits declaration files.
	OutDir string
}
