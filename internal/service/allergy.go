package service

import "strings"

// MergeAllergies adds every allergy from user that total does not already
// contain, using exact case-sensitive comparison. A nil total adopts a
// deduplicated copy of user. The result never contains duplicates as long
// as total did not.
func MergeAllergies(total, user []string) []string {
	if len(user) == 0 {
		return total
	}

	seen := make(map[string]struct{}, len(total)+len(user))
	for _, a := range total {
		seen[a] = struct{}{}
	}

	merged := total
	if merged == nil {
		merged = make([]string, 0, len(user))
	}
	for _, a := range user {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		merged = append(merged, a)
	}
	return merged
}

// ParseAllergies splits a comma separated list, trimming each entry and
// dropping empty ones
func ParseAllergies(list string) []string {
	parts := strings.Split(list, ",")
	allergies := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			allergies = append(allergies, p)
		}
	}
	return allergies
}
