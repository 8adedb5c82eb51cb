// Package assets embeds the default word list shipped with the binary.
package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// Words opens the embedded default word list. The caller closes it.
func Words() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}
