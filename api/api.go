package api

import (
	"github.com/praekeltfoundation/dcosctl-drain/tools"
)

// MachineID addresses a node the way the mesos master does. Two IDs refer
// to the same machine only when both fields match exactly.
type MachineID struct {
	Hostname string `json:"hostname"`
	IP       string `json:"ip"`
}

// NewMachineID builds the identifier for a node. The hostname doubles as
// the ip unless an explicit ip is given.
func NewMachineID(hostname, ip string) MachineID {
	if ip == "" {
		ip = hostname
	}

	return MachineID{Hostname: hostname, IP: ip}
}

// Unavailability is the time range of a maintenance window. Start is
// nanoseconds since the epoch, duration is always non-negative.
type Unavailability struct {
	Start    tools.Nanoseconds `json:"start"`
	Duration tools.Nanoseconds `json:"duration"`
}

type Window struct {
	MachineIDs     []MachineID    `json:"machine_ids"`
	Unavailability Unavailability `json:"unavailability"`
}

// Schedule is the cluster wide maintenance plan. The master exposes no
// partial update, it is always fetched and replaced wholesale.
type Schedule struct {
	Windows []Window `json:"windows"`
}

type DrainingMachine struct {
	ID MachineID `json:"id"`
}

// ClusterStatus is the master's view of machines currently draining or
// marked down.
type ClusterStatus struct {
	DrainingMachines []DrainingMachine `json:"draining_machines"`
	DownMachines     []MachineID       `json:"down_machines"`
}

// MaintenanceAPI is the surface of the mesos maintenance endpoints used by
// the actions package. MesosApi implements it over HTTP, MockApi implements
// it in memory for tests.
type MaintenanceAPI interface {
	Status() (*ClusterStatus, error)
	GetSchedule() (*Schedule, error)
	PutSchedule(*Schedule) error
	MachineDown([]MachineID) error
	MachineUp([]MachineID) error
}
