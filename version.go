package notegen

import _ "embed"

// Version is the version of the generator, read from the VERSION file.
//
//go:embed VERSION
var Version string
