package compare

// Equal reports whether produced output matches the expected
// output exactly. No trimming or normalization happens here: the
// case evaluator trims stdout before comparison, and everything
// beyond that is judged whitespace-sensitively on purpose.
func Equal(output string, expected string) bool {
	return output == expected
}
