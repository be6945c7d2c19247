// Package actions implements the maintenance operations behind each CLI
// command. Schedule mutations are read-modify-write against the master's
// schedule document with no concurrency token: two invocations racing on
// the same schedule are last-write-wins.
package actions

import (
	"fmt"
	"time"

	"github.com/praekeltfoundation/dcosctl-drain/api"

	log "github.com/sirupsen/logrus"
)

// Cordon schedules a machine for maintenance by appending a new window
// starting now. A machine that is already draining or already listed in a
// window is rejected with a ScheduleConflictError.
func Cordon(a api.MaintenanceAPI, machine api.MachineID, duration time.Duration) error {
	status, err := a.Status()
	if err != nil {
		return err
	}

	// A draining machine is already scheduled and the master will refuse
	// to schedule it a second time.
	if status.IsDraining(machine) {
		return &api.ScheduleConflictError{
			Machine: machine,
			Reason:  "machine is already in draining mode, cannot add to maintenance schedule more than once",
		}
	}

	schedule, err := a.GetSchedule()
	if err != nil {
		return err
	}

	if schedule.Contains(machine) {
		return &api.ScheduleConflictError{
			Machine: machine,
			Reason:  "machine already scheduled in a maintenance window, cannot schedule again",
		}
	}

	schedule.Add(machine, duration, time.Now())
	return a.PutSchedule(schedule)
}

// Uncordon removes a machine from every maintenance window. Windows left
// empty are pruned. A machine scheduled nowhere is a ScheduleNotFoundError.
func Uncordon(a api.MaintenanceAPI, machine api.MachineID) error {
	status, err := a.Status()
	if err != nil {
		return err
	}

	// Not an error, but worth telling the user about.
	if !status.IsDraining(machine) {
		log.WithField("host", machine.Hostname).Warn(
			"machine was not in draining mode, attempting to remove from maintenance schedule anyway")
	}

	schedule, err := a.GetSchedule()
	if err != nil {
		return err
	}

	if !schedule.Remove(machine) {
		return &api.ScheduleNotFoundError{Machine: machine}
	}

	return a.PutSchedule(schedule)
}

// Drain marks the machines as down immediately, bypassing the maintenance
// schedule entirely.
func Drain(a api.MaintenanceAPI, machines ...api.MachineID) error {
	if len(machines) == 0 {
		return fmt.Errorf("no host to drain")
	}

	return a.MachineDown(machines)
}

// Up marks the machines as up again, the opposite of Drain.
func Up(a api.MaintenanceAPI, machines ...api.MachineID) error {
	if len(machines) == 0 {
		return fmt.Errorf("no host to bring up")
	}

	return a.MachineUp(machines)
}
