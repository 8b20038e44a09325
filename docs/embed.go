// Package docs provides the embedded user documentation.
package docs

import _ "embed"

// CustomDomain is the long form of the custom domain dialog.
//
//go:embed custom-domain.md
var CustomDomain string
