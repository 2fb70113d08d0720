package render

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the character-level changes from one printed term to the
// next. Without colours, deletions are marked [-like this-] and insertions
// {+like this+}.
func Diff(from, to string, colors *Colors) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			if colors == nil {
				b.WriteString("{+" + d.Text + "+}")
			} else {
				b.WriteString(colors.Color(InsertColor, d.Text))
			}
		case diffpatch.DiffDelete:
			if colors == nil {
				b.WriteString("[-" + d.Text + "-]")
			} else {
				b.WriteString(colors.Color(DeleteColor, d.Text))
			}
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
