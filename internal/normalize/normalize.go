// Package normalize reduces noisy bank transaction text to canonical,
// comparable merchant signatures. All functions are pure and total.
package normalize

import (
	"regexp"
	"strings"

	"github.com/mhollis/sift/internal/model"
)

// groupKeyLength bounds the merchant signature. Ten characters tolerate
// suffix variation (branch numbers, city names) while still separating
// distinct brands; chosen over fuzzy matching for determinism and O(1)
// comparison.
const groupKeyLength = 10

// fallbackGroupKey is returned when a transaction yields no usable signature.
const fallbackGroupKey = "other"

var whitespaceRegex = regexp.MustCompile(`\s+`)

// stripPrefixes are bank phrases that never identify the merchant. Applied
// once each, in order, accumulating removals; the list is ordered so the
// more specific patterns run before the generic ones.
var stripPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^transfer\s+from\s+`),
	regexp.MustCompile(`(?i)^transfer\s+to\s+`),
	regexp.MustCompile(`(?i)^direct\s+credit\s+`),
	regexp.MustCompile(`(?i)^direct\s+debit\s+`),
	regexp.MustCompile(`(?i)^direct\s+credit\s*[-–]?\s*`),
	regexp.MustCompile(`(?i)^direct\s+debit\s*[-–]?\s*`),
	regexp.MustCompile(`(?i)^eftpos\s+purchase\s*`),
	regexp.MustCompile(`(?i)^pos\s+w/d\s+.*?\s+`),
	regexp.MustCompile(`(?i)^bill\s+payment\s+`),
	regexp.MustCompile(`(?i)^pay\s+`),
	regexp.MustCompile(`(?i)^debit\s+transfer\s*`),
	regexp.MustCompile(`(?i)^credit\s+transfer\s*`),
	regexp.MustCompile(`(?i)^ap#\d+\s+to\s+`),
	regexp.MustCompile(`(?i)^ap#\d+\s+`),
	regexp.MustCompile(`(?i)^ref:\s*\S+\s+`),
	regexp.MustCompile(`(?i)^inv-\d+\s+`),
	regexp.MustCompile(`(?i)^trf\s+\S+\s+`),
	regexp.MustCompile(`(?i)^stripe\s+payments?\s+ref:\s*\S+\s+`),
}

// Trailing reference noise: "Merchant Name REF: 123" -> "Merchant Name".
var (
	trailingRefRegex    = regexp.MustCompile(`(?i)\s+ref[:\s]+\S+$`)
	trailingInvRegex    = regexp.MustCompile(`(?i)\s+inv[-\s]+\S+$`)
	trailingDigitsRegex = regexp.MustCompile(`\s+\d{8,}$`)
)

// Other party names that are really just reference numbers.
var (
	numericOnlyRegex = regexp.MustCompile(`^\d+$`)
	refNumberRegex   = regexp.MustCompile(`(?i)^ref\s*:?\s*\d+`)
	invNumberRegex   = regexp.MustCompile(`(?i)^inv[- ]?\d+`)
)

var punctuationRegex = regexp.MustCompile(`[^a-z0-9 ]`)

// Normalize lowercases text, collapses runs of whitespace to single spaces
// and trims. Empty input yields an empty string.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(strings.ToLower(text), " "))
}

// StripBoilerplate removes known non-identifying bank prefixes and trailing
// reference noise from a description, leaving the merchant/payee part.
func StripBoilerplate(description string) string {
	out := strings.TrimSpace(description)
	for _, re := range stripPrefixes {
		out = re.ReplaceAllString(out, " ")
	}
	out = strings.TrimSpace(whitespaceRegex.ReplaceAllString(out, " "))
	return stripTrailingNoise(out)
}

func stripTrailingNoise(s string) string {
	s = trailingRefRegex.ReplaceAllString(s, "")
	s = trailingInvRegex.ReplaceAllString(s, "")
	s = trailingDigitsRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// isMeaningfulOtherParty reports whether an other-party name identifies a
// payee rather than a bare reference or invoice number.
func isMeaningfulOtherParty(name string) bool {
	n := strings.TrimSpace(name)
	if len(n) < 2 {
		return false
	}
	if numericOnlyRegex.MatchString(n) {
		return false
	}
	if refNumberRegex.MatchString(n) || invNumberRegex.MatchString(n) {
		return false
	}
	return true
}

// DisplayDescription returns the first non-empty of description and
// other-party name, falling back to "Unknown".
func DisplayDescription(tx model.Transaction) string {
	if tx.Description != "" {
		return tx.Description
	}
	if tx.OtherPartyName != "" {
		return tx.OtherPartyName
	}
	return "Unknown"
}

// MeaningfulDescription returns the best single string identifying the payee:
// the other-party name when meaningful, otherwise the stripped description,
// otherwise the display description.
func MeaningfulDescription(tx model.Transaction) string {
	if tx.OtherPartyName != "" && isMeaningfulOtherParty(tx.OtherPartyName) {
		return strings.TrimSpace(tx.OtherPartyName)
	}
	stripped := StripBoilerplate(tx.Description)
	if len(stripped) >= 2 {
		return stripped
	}
	return DisplayDescription(tx)
}

// GroupKey computes the merchant-equivalence signature for a transaction:
// the meaningful description, normalized and stripped of punctuation, cut at
// ten characters with word boundaries still in place, then compacted to
// lowercase letters and digits. Truncating before compaction keeps the
// signature anchored on the leading words, so "New World Hillcrest" and
// "New World Lynden" both reduce to "newworld" while distinct brands stay
// apart. Two transactions with equal keys are treated as the same merchant
// for bulk operations.
func GroupKey(tx model.Transaction) string {
	return keyFrom(MeaningfulDescription(tx))
}

// GroupKeyForDescription computes a group key from a bare description, for
// callers without a full transaction.
func GroupKeyForDescription(description string) string {
	return keyFrom(StripBoilerplate(description))
}

func keyFrom(meaningful string) string {
	normalized := punctuationRegex.ReplaceAllString(Normalize(meaningful), "")
	if len(normalized) > groupKeyLength {
		normalized = normalized[:groupKeyLength]
	}
	normalized = strings.ReplaceAll(normalized, " ", "")
	if normalized == "" {
		return fallbackGroupKey
	}
	return normalized
}

// IsSimilar reports whether two raw descriptions refer to the same or a
// similar merchant: equal after normalization, or one contains the other.
// Intentionally looser than group key equality; used by interactive
// "group similar" flows.
func IsSimilar(a, b string) bool {
	na := Normalize(a)
	nb := Normalize(b)
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}
