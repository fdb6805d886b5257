// Package diag defines the finding model shared by the scan layer, the driver
// and reporters.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Code – rule-defined message code such as "MISSING_VAR". Codes are what
//     suppression annotations and config include/exclude lists refer to.
//   - Subject – the variable or symbol the finding is about ("" when none).
//   - Pos – line, column and byte offset; the zero Pos means "unknown".
//   - Rule – name of the rule that produced the finding.
//   - Expr – the sub-expression that triggered it, when the rule had one.
//   - File, Severity – stamped by the scan layer and the driver respectively.
//
// A Diagnostic is a value. Once appended to a scan context it is never
// modified in place; the driver copies it when applying severity.
//
// # Building diagnostics
//
// Draft splits position stamping from finalization. A rule stamps a position
// with one of the At* methods (each returns a new Draft) and then calls
// Finalize as many times as it needs:
//
//	d, err := diag.NewDraft("VarScoper").AtToken(tok)
//	if err != nil {
//		return err
//	}
//	first := d.Finalize("MISSING_VAR", "x")
//	second := d.Carry().Finalize("MISSING_VAR", "y") // same position, no expression
//
// Stamping from a missing source fails with *PositionError (wrapping
// ErrNoPosition) instead of producing a zeroed position.
//
// Package diag does not render diagnostics; FormatGolden exists for stable
// test snapshots only.
package diag
