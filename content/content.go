// Package content embeds the authored markdown bodies for the zine.
package content

import "embed"

//go:embed posts/*.md
var FS embed.FS
