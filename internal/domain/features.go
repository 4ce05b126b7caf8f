package domain

import "strings"

// SplitFeatures parses a comma-separated feature list into ordered tags,
// trimming whitespace and dropping empty pieces.
func SplitFeatures(s string) []string {
	var out []string
	for _, piece := range strings.Split(s, ",") {
		if t := strings.TrimSpace(piece); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinFeatures serializes tags into the comma-joined wire form. The round
// trip JoinFeatures(SplitFeatures(s)) normalizes whitespace but preserves
// every non-empty tag in order.
func JoinFeatures(tags []string) string {
	return strings.Join(tags, ", ")
}
