package mutagens

import "regexp"

// assignmentRun matches whole runs of '=' together with their operator neighbours,
// so '==', '===', '!=', '<=', '>=' and '=>' are seen as one token and left alone.
var assignmentRun = regexp.MustCompile(`[=!<>]*=[=>]*`)

// AssignmentToEquality turns every plain assignment '=' into '=='.
var AssignmentToEquality = Operator{
	Name:        "assignment-to-equality",
	Description: "replace every lone '=' with '=='",
	pattern:     assignmentRun,
	replace: func(match string) string {
		if match == "=" {
			return "=="
		}

		return match
	},
}
