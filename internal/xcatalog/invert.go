package xcatalog

// InvertProviderCode swaps the first and last six digits of a 12-digit
// numeric provider code. One upstream ingestion path historically stored
// codes with the halves transposed, so a missed lookup is retried inverted.
// Returns "" when the code is not a 12-digit number.
func InvertProviderCode(code string) string {
	if len(code) != 12 {
		return ""
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return code[6:] + code[:6]
}
