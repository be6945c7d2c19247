package api

import "fmt"

// ScheduleConflictError is returned by cordon when the machine is already
// draining or already listed in a maintenance window. Scheduling the same
// machine twice is always rejected.
type ScheduleConflictError struct {
	Machine MachineID
	Reason  string
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Machine.Hostname, e.Reason)
}

// ScheduleNotFoundError is returned by uncordon when the machine is not
// listed in any maintenance window.
type ScheduleNotFoundError struct {
	Machine MachineID
}

func (e *ScheduleNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in any maintenance window, nothing to uncordon", e.Machine.Hostname)
}

// IsScheduleErr reports whether err is one of the schedule policy errors
// rather than a transport failure.
func IsScheduleErr(err error) bool {
	switch err.(type) {
	case *ScheduleConflictError, *ScheduleNotFoundError:
		return true
	}

	return false
}
