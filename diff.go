package inspect

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff inspects a and b with the same options and returns a line diff of
// the two renderings. Unchanged lines are prefixed with two spaces, removed
// lines with "- " and added lines with "+ ".
func Diff(a, b any, opts ...Option) string {
	from := Inspect(a, opts...) + "\n"
	to := Inspect(b, opts...) + "\n"

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for line := range strings.SplitAfterSeq(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
		}
	}
	return sb.String()
}
