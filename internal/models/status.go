package models

// Status is the lifecycle stage of a Task. The set is closed; any status may
// be set to any other status, the only rule is that the value must be one of
// the three known literals.
type Status string

const (
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Valid reports whether s is one of the three known status literals.
func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseQuickToken maps the short tokens used by the quick status-change links
// (todo, inprogress, done) to their status literals. ok is false for any
// other token.
func ParseQuickToken(token string) (Status, bool) {
	switch token {
	case "todo":
		return StatusToDo, true
	case "inprogress":
		return StatusInProgress, true
	case "done":
		return StatusDone, true
	}
	return "", false
}
