// Package assets embeds the built web UI.
// Run cmd/minify after editing style.css, script.js or index.html.tpl.
package assets

import _ "embed"

//go:embed index.html
var Index []byte
