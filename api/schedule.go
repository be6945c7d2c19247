package api

import (
	"time"

	"github.com/praekeltfoundation/dcosctl-drain/tools"
)

// Contains reports whether m is listed in any maintenance window.
func (s *Schedule) Contains(m MachineID) bool {
	for _, w := range s.Windows {
		for _, id := range w.MachineIDs {
			if id == m {
				return true
			}
		}
	}

	return false
}

// Add appends a new window holding only m, starting at start and lasting
// for d.
func (s *Schedule) Add(m MachineID, d time.Duration, start time.Time) {
	s.Windows = append(s.Windows, Window{
		MachineIDs: []MachineID{m},
		Unavailability: Unavailability{
			Start:    tools.Nanoseconds{Duration: time.Duration(start.UnixNano())},
			Duration: tools.Nanoseconds{Duration: d},
		},
	})
}

// Remove strips m from every window and drops any window left with no
// machine IDs. It reports whether m was scheduled anywhere to begin with.
func (s *Schedule) Remove(m MachineID) bool {
	found := false
	windows := make([]Window, 0, len(s.Windows))

	for _, w := range s.Windows {
		ids := make([]MachineID, 0, len(w.MachineIDs))
		for _, id := range w.MachineIDs {
			if id == m {
				found = true
				continue
			}
			ids = append(ids, id)
		}

		// empty windows are pruned, the master never sees them
		if len(ids) == 0 {
			continue
		}

		w.MachineIDs = ids
		windows = append(windows, w)
	}

	s.Windows = windows
	return found
}

// IsDraining reports whether the master considers m to be draining.
func (s *ClusterStatus) IsDraining(m MachineID) bool {
	for _, d := range s.DrainingMachines {
		if d.ID == m {
			return true
		}
	}

	return false
}
