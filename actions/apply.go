package actions

import (
	"fmt"
	"io/ioutil"

	"github.com/ghodss/yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/praekeltfoundation/dcosctl-drain/api"
)

func readYml(file string, res interface{}) error {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, res)
}

// ApplySchedule replaces the entire maintenance schedule with the document
// in file (yaml or json). The master has no partial-update API, whatever
// the file contains becomes the schedule.
func ApplySchedule(a api.MaintenanceAPI, file string) error {
	schedule := &api.Schedule{}
	if err := readYml(file, schedule); err != nil {
		return err
	}

	if err := validateSchedule(schedule); err != nil {
		return err
	}

	return a.PutSchedule(schedule)
}

func validateSchedule(s *api.Schedule) error {
	var errs *multierror.Error
	seen := map[api.MachineID]bool{}

	for i, w := range s.Windows {
		if len(w.MachineIDs) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("window %d: no machine ids", i))
		}

		if w.Unavailability.Duration.Duration < 0 {
			errs = multierror.Append(errs, fmt.Errorf("window %d: negative duration", i))
		}

		for _, m := range w.MachineIDs {
			if m.Hostname == "" {
				errs = multierror.Append(errs, fmt.Errorf("window %d: machine with empty hostname", i))
				continue
			}

			if seen[m] {
				errs = multierror.Append(errs, fmt.Errorf("window %d: %s scheduled more than once", i, m.Hostname))
			}
			seen[m] = true
		}
	}

	return errs.ErrorOrNil()
}
