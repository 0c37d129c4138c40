package compare

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between produced and expected output.
// Used to show users why a visible sample case failed; never called
// for hidden test cases.
func Diff(output string, expected string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(output),
		FromFile: "expected",
		ToFile:   "received",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}
