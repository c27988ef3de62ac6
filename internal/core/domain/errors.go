package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingEntryPoint is returned when a package has no entry point
	// override and neither src/index.ts nor src/index.js exists.
	ErrMissingEntryPoint = zerr.New("no bundle entry point found")

	// ErrInvalidNamespace is returned when a UMD namespace nests more than
	// one dot level.
	ErrInvalidNamespace = zerr.New("namespace supports at most one dot level")

	// ErrMissingTsconfig is returned when the workspace compiler
	// configuration file does not exist.
	ErrMissingTsconfig = zerr.New("workspace tsconfig not found")

	// ErrMissingOutDir is returned when the workspace tsconfig declares no
	// compilerOptions.outDir.
	ErrMissingOutDir = zerr.New("tsconfig declares no outDir")

	// ErrExtractionFailed is returned when the extractor completed but
	// reported a nonzero error count.
	ErrExtractionFailed = zerr.New("declaration extraction reported errors")

	// ErrExtractorCrashed is returned when the extractor process could not
	// run to completion.
	ErrExtractorCrashed = zerr.New("declaration extractor crashed")
)
