package config

// Smeltfile represents the structure of the smelt.yaml tool configuration.
// Every field has a working default; the file itself is optional.
type Smeltfile struct {
	Version   string          `yaml:"version"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Bundle    BundleDefaults  `yaml:"bundle"`
}

// ExtractorConfig configures the external declaration extractor.
type ExtractorConfig struct {
	// Bin is the extractor executable to invoke.
	Bin string `yaml:"bin"`

	// Tsconfig is the workspace compiler configuration path, relative to
	// the workspace root.
	Tsconfig string `yaml:"tsconfig"`
}

// WorkspaceConfig configures workspace package discovery.
type WorkspaceConfig struct {
	// ListCommand is the monorepo package-lister invocation. It must print
	// a JSON array of {name, location} objects.
	ListCommand []string `yaml:"listCommand"`
}

// BundleDefaults configures bundle-config assembly defaults.
type BundleDefaults struct {
	// Namespace is the global namespace UMD builds attach to when the
	// package manifest declares none.
	Namespace string `yaml:"namespace"`

	// Sourcemap enables sourcemaps for all outputs unless overridden.
	// A nil value means the convention default (enabled).
	Sourcemap *bool `yaml:"sourcemap"`
}

// SourcemapEnabled resolves the sourcemap default.
func (b BundleDefaults) SourcemapEnabled() bool {
	return b.Sourcemap == nil || *b.Sourcemap
}

// Default returns a Smeltfile populated with the conventional defaults.
func Default() *Smeltfile {
	return &Smeltfile{
		Version: "1",
		Extractor: ExtractorConfig{
			Bin:      "api-extractor",
			Tsconfig: "tsconfig.json",
		},
		Workspace: WorkspaceConfig{
			ListCommand: []string{"lerna", "list", "--json", "--all", "--loglevel", "silent"},
		},
		Bundle: BundleDefaults{
			Namespace: "Plugin",
		},
	}
}
