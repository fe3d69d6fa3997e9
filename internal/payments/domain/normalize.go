package payments

import "strings"

// keywordRule maps substrings of a lower-cased free-text label to a
// canonical bucket. Rules are evaluated in order; first match wins.
type keywordRule struct {
	keywords []string
	bucket   string
}

// Method and purpose rule chains. Upstream data is free text typed by
// school staff, so classification is best effort; append new rules here
// without touching call sites.
var (
	methodRules = []keywordRule{
		{[]string{"eft", "bank", "transfer"}, "Bank Transfer / EFT"},
		{[]string{"cash"}, "Cash"},
		{[]string{"card", "speedpoint", "pos"}, "Card"},
		{[]string{"debit order", "debicheck"}, "Debit Order"},
		{[]string{"snapscan", "zapper", "qr"}, "QR / Mobile"},
		{[]string{"cheque", "check"}, "Cheque"},
	}

	purposeRules = []keywordRule{
		{[]string{"uniform"}, "Uniform"},
		{[]string{"registration", "enrol", "admission"}, "Registration"},
		{[]string{"transport", "bus"}, "Transport"},
		{[]string{"stationery", "book"}, "Stationery & Books"},
		{[]string{"aftercare", "after care"}, "Aftercare"},
		{[]string{"trip", "outing", "excursion"}, "Outings"},
		{[]string{"fee", "tuition", "school"}, "School Fees"},
	}
)

// NormalizeMethod buckets a free-text payment method label.
func NormalizeMethod(label string) string {
	return normalize(label, methodRules, "Unspecified")
}

// NormalizePurpose buckets a free-text payment purpose label.
func NormalizePurpose(label string) string {
	return normalize(label, purposeRules, "General")
}

// IsUniformPurpose reports whether a label lands in the Uniform bucket.
func IsUniformPurpose(label string) bool {
	return NormalizePurpose(label) == "Uniform"
}

func normalize(label string, rules []keywordRule, fallback string) string {
	lowered := strings.ToLower(strings.TrimSpace(label))
	if lowered == "" {
		return fallback
	}
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.bucket
			}
		}
	}
	return titleCaseTokens(lowered, fallback)
}

// titleCaseTokens renders an unmatched label as title-cased words split
// on non-alphanumeric separators, so every record still lands in exactly
// one stable bucket. Labels with no usable tokens get the fallback.
func titleCaseTokens(lowered, fallback string) string {
	tokens := strings.FieldsFunc(lowered, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	if len(tokens) == 0 {
		return fallback
	}
	for i, token := range tokens {
		tokens[i] = strings.ToUpper(token[:1]) + token[1:]
	}
	return strings.Join(tokens, " ")
}
