package schedule

import (
	"strings"
)

// matchOrder ranks fields when several could claim the same header:
// required fields first, then optional, then extended
var matchOrder = []string{
	FieldEnvironment, FieldPurpose, FieldTask, FieldStartDate,
	FieldEndDate, FieldBatch, FieldStatus,
	FieldIntermediateFile, FieldDataBaseDate, FieldKingdomFreezeDate,
	FieldKingdomTransferDate, FieldRemark,
}

// MatchHeaders maps field keys to column indexes in headers.
// Exact alias matches win over partial ones and each column is claimed at most once.
func MatchHeaders(headers []string, fields []Field) map[string]int {
	matched := make(map[string]int)
	claimed := make(map[int]bool)

	ordered := orderFields(fields)

	assign := func(match func(header, alias string) bool) {
		for index, raw := range headers {
			header := strings.ToLower(strings.TrimSpace(raw))
			if header == "" || claimed[index] {
				continue
			}
			for _, field := range ordered {
				if _, done := matched[field.Key]; done {
					continue
				}
				if matchesAny(header, field.Aliases, match) {
					matched[field.Key] = index
					claimed[index] = true
					break
				}
			}
		}
	}

	assign(func(header, alias string) bool {
		return header == alias
	})
	assign(func(header, alias string) bool {
		return strings.Contains(header, alias) || strings.Contains(alias, header)
	})

	// Last resort for the environment column
	if _, ok := matched[FieldEnvironment]; !ok {
		for index, raw := range headers {
			header := strings.TrimSpace(raw)
			if claimed[index] || header == "" {
				continue
			}
			if strings.Contains(header, "環境") && !strings.Contains(header, "目的") {
				matched[FieldEnvironment] = index
				break
			}
		}
	}

	return matched
}

// UnmatchedHeaders lists the non-empty headers MatchHeaders left unassigned
func UnmatchedHeaders(headers []string, matched map[string]int) []string {
	used := make(map[int]bool, len(matched))
	for _, index := range matched {
		used[index] = true
	}

	var unmatched []string
	for index, header := range headers {
		header = strings.TrimSpace(header)
		if header != "" && !used[index] {
			unmatched = append(unmatched, header)
		}
	}
	return unmatched
}

func matchesAny(header string, aliases []string, match func(header, alias string) bool) bool {
	for _, alias := range aliases {
		if match(header, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

func orderFields(fields []Field) []Field {
	ordered := make([]Field, 0, len(fields))
	seen := make(map[string]bool)
	for _, key := range matchOrder {
		if f, ok := FieldByKey(fields, key); ok {
			ordered = append(ordered, f)
			seen[key] = true
		}
	}
	for _, f := range fields {
		if !seen[f.Key] {
			ordered = append(ordered, f)
		}
	}
	return ordered
}
