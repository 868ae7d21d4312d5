package domain

import "time"

const (
	// ConfigFileName is the name of the pipeline configuration file.
	ConfigFileName = "glaze.yaml"

	// StyleExt is the extension given to compiled style sheets.
	StyleExt = ".css"

	// MinifiedScriptExt is the extension given to minified scripts by default.
	MinifiedScriptExt = ".min.js"

	// PrecompressExt is appended to outputs for their brotli sidecar.
	PrecompressExt = ".br"

	// PartialPrefix marks style sheets that are only meant to be imported.
	PartialPrefix = "_"

	// DefaultDelay is the debounce window applied to file system events.
	DefaultDelay = 200 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Default source and destination paths, relative to the project root.
const (
	DefaultStyleSource   = "Resources/Public/Scss/**/*.scss"
	DefaultStyleFinal    = "Resources/Public/Scss/**/*-final.scss"
	DefaultStyleDest     = "Resources/Public/Css"
	DefaultScriptSource  = "Resources/Public/JavaScript/JsPartials/**/_*.js"
	DefaultScriptDest    = "Resources/Public/JavaScript/Dist"
	DefaultStyleTaskName = "styles"
	DefaultScriptTask    = "scripts"
)
