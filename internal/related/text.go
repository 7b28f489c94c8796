package related

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// inlineTags maps recognized inline markup onto its short form.
// Any other element is flattened to its text.
var inlineTags = map[string]string{
	"italic":    "i",
	"bold":      "b",
	"sup":       "sup",
	"sub":       "sub",
	"sc":        "sc",
	"underline": "u",
	"monospace": "tt",
}

// textEscaper keeps literal text apart from the generated inline tags.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// ResolveText renders the mixed content of n with inline markup normalized,
// whitespace runs collapsed and surrounding whitespace trimmed.
func ResolveText(n jatsmeta.Node) string {
	var b strings.Builder
	writeInline(&b, n)
	return norm.NFC.String(strings.Join(strings.Fields(b.String()), " "))
}

func writeInline(b *strings.Builder, n jatsmeta.Node) {
	for _, c := range n.Children() {
		name := c.Name()
		if name == "" {
			textEscaper.WriteString(b, c.Text())
			continue
		}
		short, ok := inlineTags[name]
		if !ok {
			writeInline(b, c)
			continue
		}
		b.WriteString("<" + short + ">")
		writeInline(b, c)
		b.WriteString("</" + short + ">")
	}
}
