package actions

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ghodss/yaml"
	"github.com/praekeltfoundation/dcosctl-drain/api"
)

// Status prints the machines the master reports as draining or down.
func Status(a api.MaintenanceAPI) error {
	status, err := a.Status()
	if err != nil {
		return err
	}

	tableHeader("hostname", "ip", "state")
	for _, m := range status.DrainingMachines {
		tableRow(m.ID.Hostname, m.ID.IP, "draining")
	}
	for _, m := range status.DownMachines {
		tableRow(m.Hostname, m.IP, "down")
	}
	return nil
}

// ListSchedule prints the maintenance windows, one row per scheduled
// machine, or the whole document as yaml.
func ListSchedule(a api.MaintenanceAPI, asYaml bool) error {
	schedule, err := a.GetSchedule()
	if err != nil {
		return err
	}

	if asYaml {
		printYaml(schedule)
		return nil
	}

	tableHeader("window", "hostname", "ip", "start", "duration")
	for i, w := range schedule.Windows {
		start := time.Unix(0, w.Unavailability.Start.Nanoseconds()).UTC().Format(time.RFC3339)
		for _, m := range w.MachineIDs {
			tableRow(i, m.Hostname, m.IP, start, w.Unavailability.Duration.String())
		}
	}
	return nil
}

func printYaml(obj interface{}) {
	data, _ := yaml.Marshal(obj)
	fmt.Printf("\n%s\n", data)
}

func tableHeader(items ...interface{}) {
	r := row(items)
	c := utf8.RuneCountInString(r)
	p := ""
	for i := 0; i < c; i++ {
		p += "-"
	}
	fmt.Println(r)
	fmt.Println(p)
}

func tableRow(items ...interface{}) {
	fmt.Println(row(items))
}

func row(items []interface{}) string {
	s := ""
	for _, i := range items {
		s += pad(fmt.Sprintf("%v", i))
	}
	return s
}

func pad(x string) string {
	c := utf8.RuneCountInString(x)
	for i := 0; i < (22 - c); i++ {
		x += " "
	}
	return x
}
