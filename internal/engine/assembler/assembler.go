// Package assembler builds bundler configurations from package manifest conventions.
package assembler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultNamespace is the global namespace UMD builds attach to when neither
// the manifest nor the options declare one.
const DefaultNamespace = "Plugin"

// entryCandidates are the conventional entry points, checked in order after
// any explicit override.
var entryCandidates = []string{
	filepath.Join("src", "index.ts"),
	filepath.Join("src", "index.js"),
}

// Options parameterizes one assembly. All ambient process state (working
// directory, production mode, clock) is passed explicitly.
type Options struct {
	// Dir is the package directory. Manifest fields and outputs are
	// interpreted relative to it.
	Dir string

	// Manifest is the package manifest. When nil, it is loaded from Dir.
	Manifest *domain.PackageManifest

	// Sourcemap enables sourcemaps on every output.
	Sourcemap bool

	// External are additional externals unioned with the manifest's
	// dependencies and peerDependencies.
	External []string

	// ExcludeExternal removes entries from the final externals list.
	ExcludeExternal []string

	// Input overrides the conventional entry point.
	Input string

	// MainPath, ModulePath and BundlePath override the manifest's main,
	// module and bundle output paths.
	MainPath   string
	ModulePath string
	BundlePath string

	// Namespace overrides the default UMD namespace when the manifest
	// declares none.
	Namespace string

	// Production additionally emits the minified UMD output.
	Production bool

	// Now is the banner timestamp. The zero value means time.Now.
	Now time.Time
}

// Assembler derives bundler configurations from package conventions.
type Assembler struct {
	manifests ports.ManifestLoader
}

// New creates a new Assembler.
func New(manifests ports.ManifestLoader) *Assembler {
	return &Assembler{manifests: manifests}
}

// Assemble produces the ordered bundler configurations for one package: a
// library config (CommonJS and/or ESM outputs) when a main or module path is
// configured, then a browser config (UMD outputs) when a bundle path is
// configured. An empty result with a nil error means nothing to bundle.
func (a *Assembler) Assemble(opts Options) ([]domain.BundleConfig, error) {
	m := opts.Manifest
	if m == nil {
		loaded, err := a.manifests.Load(opts.Dir)
		if err != nil {
			return nil, err
		}
		m = loaded
	}

	entry, err := resolveEntry(opts.Dir, opts.Input)
	if err != nil {
		return nil, err
	}

	external := resolveExternals(opts, m)
	banner := formatBanner(m, opts.Now)

	var configs []domain.BundleConfig

	mainPath := override(opts.MainPath, m.Main)
	modulePath := override(opts.ModulePath, m.Module)
	if mainPath != "" || modulePath != "" {
		lib := domain.BundleConfig{Input: entry, External: external}
		if mainPath != "" {
			lib.Outputs = append(lib.Outputs, domain.OutputDescriptor{
				File:      filepath.Join(opts.Dir, mainPath),
				Format:    domain.FormatCommonJS,
				Sourcemap: opts.Sourcemap,
				Banner:    banner,
			})
		}
		if modulePath != "" {
			lib.Outputs = append(lib.Outputs, domain.OutputDescriptor{
				File:      filepath.Join(opts.Dir, modulePath),
				Format:    domain.FormatESM,
				Sourcemap: opts.Sourcemap,
				Banner:    banner,
			})
		}
		configs = append(configs, lib)
	}

	bundlePath := override(opts.BundlePath, m.Bundle)
	if bundlePath != "" {
		name, footer, err := umdAttachment(m, override(opts.Namespace, ""))
		if err != nil {
			return nil, err
		}

		umd := domain.OutputDescriptor{
			File:      filepath.Join(opts.Dir, bundlePath),
			Format:    domain.FormatUMD,
			Sourcemap: opts.Sourcemap,
			Banner:    banner,
			Footer:    footer,
			Name:      name,
		}

		browser := domain.BundleConfig{Input: entry, External: external}
		browser.Outputs = append(browser.Outputs, umd)
		if opts.Production {
			minified := umd
			minified.File = domain.MinifiedPath(umd.File)
			minified.Minify = true
			browser.Outputs = append(browser.Outputs, minified)
		}
		configs = append(configs, browser)
	}

	return configs, nil
}

// resolveEntry picks the first existing entry point: the explicit override,
// then src/index.ts, then src/index.js.
func resolveEntry(dir, input string) (string, error) {
	candidates := entryCandidates
	if input != "" {
		candidates = append([]string{input}, candidates...)
	}

	for _, c := range candidates {
		path := filepath.Join(dir, c)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	// Wrap before attaching metadata so errors.Is still sees the sentinel.
	return "", zerr.With(zerr.Wrap(domain.ErrMissingEntryPoint, "entry resolution failed"), "dir", dir)
}

// resolveExternals unions the caller's externals with the manifest's
// dependency and peerDependency names, minus the exclusions, sorted.
func resolveExternals(opts Options, m *domain.PackageManifest) []string {
	set := make(map[string]bool)
	for _, e := range opts.External {
		set[e] = true
	}
	for name := range m.PeerDependencies {
		set[name] = true
	}
	for name := range m.Dependencies {
		set[name] = true
	}
	for _, e := range opts.ExcludeExternal {
		delete(set, e)
	}

	if len(set) == 0 {
		return nil
	}
	external := make([]string, 0, len(set))
	for name := range set {
		external = append(external, name)
	}
	sort.Strings(external)
	return external
}

// formatBanner renders the comment prepended to every output.
func formatBanner(m *domain.PackageManifest, now time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}
	return fmt.Sprintf(
		"/*!\n * %s - v%s\n * Compiled %s\n *\n * Copyright (c) %d %s\n */",
		m.Name, m.Version, now.UTC().Format(time.RFC1123), now.UTC().Year(), m.Author,
	)
}

// umdAttachment resolves the global name and namespace-attachment footer of a
// UMD build. Standalone packages own their global and get no footer; other
// packages build under a scratch global that the footer merges into the
// shared namespace object, with at most one dot-nesting level.
func umdAttachment(m *domain.PackageManifest, fallback string) (name, footer string, err error) {
	ns := m.Namespace
	if ns == "" {
		ns = fallback
	}
	if ns == "" {
		ns = DefaultNamespace
	}

	parts := strings.Split(ns, ".")
	if len(parts) > 2 {
		return "", "", zerr.With(zerr.Wrap(domain.ErrInvalidNamespace, "invalid UMD namespace"), "namespace", ns)
	}

	if m.Standalone {
		return ns, "", nil
	}

	scratch := globalVar(m.UnscopedName())

	var b strings.Builder
	fmt.Fprintf(&b, "this.%s = this.%s || {};", parts[0], parts[0])
	if len(parts) == 2 {
		fmt.Fprintf(&b, "\nthis.%s = this.%s || {};", ns, ns)
	}
	fmt.Fprintf(&b, "\nObject.assign(this.%s, %s);", ns, scratch)

	return scratch, b.String(), nil
}

// globalVar turns a package name into a valid scratch global identifier,
// e.g. "filter-tools" becomes "_filter_tools".
func globalVar(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	return "_" + mapped
}

// override returns the first non-empty value.
func override(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
