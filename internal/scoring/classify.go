package scoring

import "strings"

// unknownRecord is the placeholder attached to tokens the table does not
// recognise. Unknown ingredients default to low risk rather than high: OCR
// produces plenty of novel tokens and treating every one of them as a hazard
// would make the score useless. This optimism is deliberate product policy.
var unknownRecord = IngredientRecord{
	CanonicalName: "unknown",
	Category:      CategoryUnknown,
	RiskTier:      RiskLow,
	Description:   "Not in the ingredient database.",
}

// Classify maps ingredient tokens to rule-table records. Tokens are matched
// case-insensitively: exact canonical/alias match first, then bidirectional
// substring containment (OCR truncates and extends names in both directions).
// When several aliases match by substring the longest alias wins, so
// "iodised salt" beats "salt". Classify never fails; unmatched tokens come
// back with Matched=false and the unknown placeholder.
func Classify(tokens []string) []ClassifiedIngredient {
	out := make([]ClassifiedIngredient, 0, len(tokens))
	for _, token := range tokens {
		normalized := strings.ToLower(strings.TrimSpace(token))
		if normalized == "" {
			continue
		}
		rec, ok := lookup(normalized)
		ci := ClassifiedIngredient{Token: strings.TrimSpace(token), Matched: ok}
		if ok {
			ci.IngredientRecord = rec
		} else {
			ci.IngredientRecord = unknownRecord
		}
		out = append(out, ci)
	}
	return out
}

func lookup(token string) (IngredientRecord, bool) {
	// Exact pass.
	for _, rec := range ruleTable {
		if token == rec.CanonicalName {
			return rec, true
		}
		for _, alias := range rec.Aliases {
			if token == alias {
				return rec, true
			}
		}
	}

	// Substring pass: longest matching alias wins.
	var best IngredientRecord
	bestLen := -1
	for _, rec := range ruleTable {
		for _, alias := range rec.Aliases {
			if len(alias) > bestLen && (strings.Contains(token, alias) || strings.Contains(alias, token)) {
				best = rec
				bestLen = len(alias)
			}
		}
	}
	if bestLen >= 0 {
		return best, true
	}
	return IngredientRecord{}, false
}
