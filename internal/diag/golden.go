package diag

import (
	"strings"
)

// FormatGolden renders one line per diagnostic:
//
//	<severity> <CODE> <file>:<line>:<col> <subject> [rule]
//
// Input order is kept; sort the Bag first for stable snapshots.
func FormatGolden(diags []Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		var sb strings.Builder
		sb.WriteString(strings.ToLower(d.Severity.String()))
		sb.WriteByte(' ')
		sb.WriteString(d.Code.String())
		sb.WriteByte(' ')
		sb.WriteString(d.File)
		sb.WriteByte(':')
		sb.WriteString(d.Pos.String())
		if d.Subject != "" {
			sb.WriteByte(' ')
			sb.WriteString(d.Subject)
		}
		if d.Rule != "" {
			sb.WriteString(" [")
			sb.WriteString(d.Rule)
			sb.WriteByte(']')
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
