package api

import (
	"encoding/json"
	"sync"
)

func NewMockApi() *MockApi {
	return &MockApi{
		schedule: &Schedule{},
		status:   &ClusterStatus{},
		lock:     &sync.Mutex{},
	}
}

// MockApi keeps the maintenance state in memory. Tests preload a schedule
// or draining machines and inspect what the actions posted back.
type MockApi struct {
	schedule *Schedule
	status   *ClusterStatus

	PutCount  int
	DownCalls [][]MachineID
	UpCalls   [][]MachineID

	// FailWith, when set, is returned from every call.
	FailWith error

	lock *sync.Mutex
}

func (a *MockApi) SetSchedule(s *Schedule) {
	a.lock.Lock()
	defer a.lock.Unlock()
	a.schedule = copySchedule(s)
}

func (a *MockApi) SetDraining(ms ...MachineID) {
	a.lock.Lock()
	defer a.lock.Unlock()
	for _, m := range ms {
		a.status.DrainingMachines = append(a.status.DrainingMachines, DrainingMachine{ID: m})
	}
}

func (a *MockApi) Status() (*ClusterStatus, error) {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.FailWith != nil {
		return nil, a.FailWith
	}

	status := *a.status
	return &status, nil
}

func (a *MockApi) GetSchedule() (*Schedule, error) {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.FailWith != nil {
		return nil, a.FailWith
	}

	return copySchedule(a.schedule), nil
}

func (a *MockApi) PutSchedule(s *Schedule) error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.FailWith != nil {
		return a.FailWith
	}

	a.schedule = copySchedule(s)
	a.PutCount++
	return nil
}

func (a *MockApi) MachineDown(ids []MachineID) error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.FailWith != nil {
		return a.FailWith
	}

	a.DownCalls = append(a.DownCalls, ids)
	a.status.DownMachines = append(a.status.DownMachines, ids...)
	return nil
}

func (a *MockApi) MachineUp(ids []MachineID) error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.FailWith != nil {
		return a.FailWith
	}

	a.UpCalls = append(a.UpCalls, ids)

	down := make([]MachineID, 0, len(a.status.DownMachines))
	for _, m := range a.status.DownMachines {
		keep := true
		for _, id := range ids {
			if id == m {
				keep = false
			}
		}
		if keep {
			down = append(down, m)
		}
	}
	a.status.DownMachines = down

	return nil
}

// copySchedule deep copies via the wire encoding so callers cannot mutate
// the stored document through shared slices.
func copySchedule(s *Schedule) *Schedule {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}

	c := &Schedule{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	return c
}
