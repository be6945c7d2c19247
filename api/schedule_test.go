package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func machine(host string) MachineID {
	return NewMachineID(host, "")
}

func window(hosts ...string) Window {
	w := Window{}
	for _, h := range hosts {
		w.MachineIDs = append(w.MachineIDs, machine(h))
	}
	return w
}

func TestNewMachineID(t *testing.T) {
	assert.Equal(t, MachineID{Hostname: "host1", IP: "host1"}, NewMachineID("host1", ""))
	assert.Equal(t, MachineID{Hostname: "host1", IP: "10.0.0.1"}, NewMachineID("host1", "10.0.0.1"))
}

func TestAddWindow(t *testing.T) {
	s := &Schedule{}
	now := time.Unix(1500000000, 0)

	s.Add(machine("host1"), time.Hour, now)

	assert.Len(t, s.Windows, 1)
	w := s.Windows[0]
	assert.Equal(t, []MachineID{{Hostname: "host1", IP: "host1"}}, w.MachineIDs)
	assert.Equal(t, now.UnixNano(), w.Unavailability.Start.Nanoseconds())
	assert.Equal(t, time.Hour, w.Unavailability.Duration.Duration)
}

func TestScheduleWireFormat(t *testing.T) {
	s := &Schedule{Windows: []Window{}}
	s.Add(machine("host1"), time.Hour, time.Unix(1500000000, 0))

	data, err := json.Marshal(s)
	assert.Nil(t, err)
	assert.Equal(t, `{"windows":[{"machine_ids":[{"hostname":"host1","ip":"host1"}],`+
		`"unavailability":{"start":{"nanoseconds":1500000000000000000},"duration":{"nanoseconds":3600000000000}}}]}`,
		string(data))
}

func TestContains(t *testing.T) {
	s := &Schedule{Windows: []Window{window("host1", "host2"), window("host3")}}

	assert.True(t, s.Contains(machine("host1")))
	assert.True(t, s.Contains(machine("host3")))
	assert.False(t, s.Contains(machine("host4")))
	assert.False(t, s.Contains(NewMachineID("host1", "10.0.0.1")))
}

func TestRemoveLeavesOtherMachines(t *testing.T) {
	s := &Schedule{Windows: []Window{window("host1", "host2")}}

	assert.True(t, s.Remove(machine("host1")))
	assert.Len(t, s.Windows, 1)
	assert.Equal(t, []MachineID{machine("host2")}, s.Windows[0].MachineIDs)
}

func TestRemovePrunesEmptyWindow(t *testing.T) {
	s := &Schedule{Windows: []Window{window("host1")}}

	assert.True(t, s.Remove(machine("host1")))
	assert.Len(t, s.Windows, 0)
}

func TestRemoveStripsAllWindows(t *testing.T) {
	s := &Schedule{Windows: []Window{
		window("host1", "host2"),
		window("host1"),
		window("host3", "host1"),
	}}

	assert.True(t, s.Remove(machine("host1")))
	assert.False(t, s.Contains(machine("host1")))
	assert.Len(t, s.Windows, 2)
	assert.Equal(t, []MachineID{machine("host2")}, s.Windows[0].MachineIDs)
	assert.Equal(t, []MachineID{machine("host3")}, s.Windows[1].MachineIDs)
}

func TestRemoveNotScheduled(t *testing.T) {
	s := &Schedule{Windows: []Window{window("host2")}}

	assert.False(t, s.Remove(machine("host1")))
	assert.Len(t, s.Windows, 1)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	original := window("host2")
	s := &Schedule{Windows: []Window{original}}

	s.Add(machine("host1"), time.Hour, time.Now())
	assert.True(t, s.Remove(machine("host1")))

	assert.Equal(t, []Window{original}, s.Windows)
}

func TestIsDraining(t *testing.T) {
	status := &ClusterStatus{DrainingMachines: []DrainingMachine{
		{ID: machine("host1")},
	}}

	assert.True(t, status.IsDraining(machine("host1")))
	assert.False(t, status.IsDraining(machine("host2")))
}
