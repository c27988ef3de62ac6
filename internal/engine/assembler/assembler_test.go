package assembler_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports/mocks"
	"go.trai.ch/smelt/internal/engine/assembler"
	"go.uber.org/mock/gomock"
)

// pkgDir creates a package directory containing the given source files.
func pkgDir(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("export {};\n"), 0o600))
	}
	return dir
}

func newAssembler(t *testing.T) *assembler.Assembler {
	t.Helper()
	// Tests pass the manifest explicitly; the loader must stay untouched.
	ctrl := gomock.NewController(t)
	return assembler.New(mocks.NewMockManifestLoader(ctrl))
}

func TestAssemble_LibraryOutputsOnly(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{
		Name:    "@family/core",
		Version: "1.2.3",
		Main:    "dist/core.cjs.js",
		Module:  "dist/core.esm.js",
	}

	configs, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m, Sourcemap: true})
	require.NoError(t, err)

	require.Len(t, configs, 1)
	cfg := configs[0]
	assert.Equal(t, filepath.Join(dir, "src/index.ts"), cfg.Input)
	require.Len(t, cfg.Outputs, 2)
	assert.Equal(t, domain.FormatCommonJS, cfg.Outputs[0].Format)
	assert.Equal(t, filepath.Join(dir, "dist/core.cjs.js"), cfg.Outputs[0].File)
	assert.Equal(t, domain.FormatESM, cfg.Outputs[1].Format)
	assert.True(t, cfg.Outputs[0].Sourcemap)
	assert.Empty(t, cfg.Outputs[0].Footer)
}

func TestAssemble_ProductionaddsMinifiedUMD(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{
		Name:    "@family/filters",
		Version: "2.0.0",
		Main:    "dist/filters.cjs.js",
		Module:  "dist/filters.esm.js",
		Bundle:  "dist/filters.js",
	}

	configs, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m, Production: true})
	require.NoError(t, err)

	require.Len(t, configs, 2)
	require.Len(t, configs[0].Outputs, 2)

	browser := configs[1]
	require.Len(t, browser.Outputs, 2)
	assert.Equal(t, domain.FormatUMD, browser.Outputs[0].Format)
	assert.False(t, browser.Outputs[0].Minify)
	assert.Equal(t, filepath.Join(dir, "dist/filters.min.js"), browser.Outputs[1].File)
	assert.True(t, browser.Outputs[1].Minify)
	assert.Equal(t, domain.FormatUMD, browser.Outputs[1].Format)
}

func TestAssemble_BundleOnlyNonProduction(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{Name: "widget", Version: "0.1.0", Bundle: "dist/widget.js"}

	configs, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m})
	require.NoError(t, err)

	require.Len(t, configs, 1)
	require.Len(t, configs[0].Outputs, 1)
	assert.Equal(t, domain.FormatUMD, configs[0].Outputs[0].Format)
}

func TestAssemble_UMDNamespaceFooter(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{
		Name:      "@family/filter-tools",
		Version:   "1.0.0",
		Bundle:    "dist/filter-tools.js",
		Namespace: "Plugin.filters",
	}

	configs, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m})
	require.NoError(t, err)

	out := configs[0].Outputs[0]
	assert.Equal(t, "_filter_tools", out.Name)
	assert.Contains(t, out.Footer, "this.Plugin = this.Plugin || {};")
	assert.Contains(t, out.Footer, "this.Plugin.filters = this.Plugin.filters || {};")
	assert.Contains(t, out.Footer, "Object.assign(this.Plugin.filters, _filter_tools);")
}

func TestAssemble_DefaultNamespace(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{Name: "core", Version: "1.0.0", Bundle: "dist/core.js"}

	configs, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m})
	require.NoError(t, err)

	out := configs[0].Outputs[0]
	assert.Contains(t, out.Footer, "Object.assign(this.Plugin, _core);")
}

func TestAssemble_StandaloneSkipsFooter(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{
		Name:       "@family/app",
		Version:    "3.0.0",
		Bundle:     "dist/app.js",
		Namespace:  "App",
		Standalone: true,
	}

	configs, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m})
	require.NoError(t, err)

	out := configs[0].Outputs[0]
	assert.Equal(t, "App", out.Name)
	assert.Empty(t, out.Footer)
}

func TestAssemble_NamespaceTooDeep(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{
		Name:      "x",
		Version:   "1.0.0",
		Bundle:    "dist/x.js",
		Namespace: "a.b.c",
	}

	_, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m})
	require.ErrorIs(t, err, domain.ErrInvalidNamespace)
}

func TestAssemble_Externals(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{
		Name:             "@family/core",
		Version:          "1.0.0",
		Main:             "dist/core.cjs.js",
		Dependencies:     map[string]string{"tslib": "^2.0.0", "eventemitter3": "^5.0.0"},
		PeerDependencies: map[string]string{"@family/utils": "^1.0.0"},
	}

	configs, err := newAssembler(t).Assemble(assembler.Options{
		Dir:             dir,
		Manifest:        m,
		External:        []string{"lodash", "tslib"},
		ExcludeExternal: []string{"eventemitter3"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"@family/utils", "lodash", "tslib"}, configs[0].External)
}

func TestAssemble_EntryResolution(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		dir := pkgDir(t, "src/index.ts", "src/browser.ts")
		m := &domain.PackageManifest{Name: "x", Version: "1.0.0", Main: "dist/x.js"}

		configs, err := newAssembler(t).Assemble(assembler.Options{
			Dir:      dir,
			Manifest: m,
			Input:    filepath.Join("src", "browser.ts"),
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "src/browser.ts"), configs[0].Input)
	})

	t.Run("missing override falls back", func(t *testing.T) {
		dir := pkgDir(t, "src/index.js")
		m := &domain.PackageManifest{Name: "x", Version: "1.0.0", Main: "dist/x.js"}

		configs, err := newAssembler(t).Assemble(assembler.Options{
			Dir:      dir,
			Manifest: m,
			Input:    filepath.Join("src", "nope.ts"),
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "src/index.js"), configs[0].Input)
	})

	t.Run("no entry at all", func(t *testing.T) {
		dir := t.TempDir()
		m := &domain.PackageManifest{Name: "x", Version: "1.0.0", Main: "dist/x.js"}

		_, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m})
		require.ErrorIs(t, err, domain.ErrMissingEntryPoint)
	})
}

func TestAssemble_Banner(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	m := &domain.PackageManifest{
		Name:    "@family/core",
		Version: "1.2.3",
		Author:  domain.Person{Name: "Family Team", Email: "team@example.com"},
		Main:    "dist/core.cjs.js",
	}

	configs, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m, Now: now})
	require.NoError(t, err)

	banner := configs[0].Outputs[0].Banner
	assert.Contains(t, banner, "@family/core - v1.2.3")
	assert.Contains(t, banner, "Compiled Sat, 14 Mar 2026 09:26:53 UTC")
	assert.Contains(t, banner, "Copyright (c) 2026 Family Team <team@example.com>")
}

func TestAssemble_NothingConfigured(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")
	m := &domain.PackageManifest{Name: "x", Version: "1.0.0"}

	configs, err := newAssembler(t).Assemble(assembler.Options{Dir: dir, Manifest: m})
	require.NoError(t, err)
	assert.Empty(t, configs)
}

func TestAssemble_LoadsManifestWhenMissing(t *testing.T) {
	dir := pkgDir(t, "src/index.ts")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockManifestLoader(ctrl)
	loader.EXPECT().Load(dir).Return(&domain.PackageManifest{
		Name:    "@family/core",
		Version: "1.0.0",
		Module:  "dist/core.esm.js",
	}, nil).Times(1)

	configs, err := assembler.New(loader).Assemble(assembler.Options{Dir: dir})
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, domain.FormatESM, configs[0].Outputs[0].Format)
}
