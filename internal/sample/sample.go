// Package sample embeds a synthetic commercial case used by the demo
// summarize command and the legacy summary endpoint.
package sample

import _ "embed"

//go:embed case.txt
var caseText string

// Title is the display title of the embedded case.
const Title = "Meridian Supply Co. v. Atlas Logistics Inc."

// CaseText returns the embedded sample judgment text.
func CaseText() string {
	return caseText
}
