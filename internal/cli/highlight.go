package cli

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlight colours generated TSX for terminal display. It returns source
// unchanged when colour is disabled or highlighting fails.
func Highlight(source string) string {
	if !ColorEnabled {
		return source
	}
	var b strings.Builder
	if err := quick.Highlight(&b, source, "tsx", "terminal256", "monokai"); err != nil {
		return source
	}
	return b.String()
}
