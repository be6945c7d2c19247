package actions

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/praekeltfoundation/dcosctl-drain/api"
	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, name, content string) string {
	file := filepath.Join(t.TempDir(), name)
	assert.Nil(t, ioutil.WriteFile(file, []byte(content), 0644))
	return file
}

func TestApplySchedule(t *testing.T) {
	file := writeFile(t, "maintenance.yml", `
windows:
- machine_ids:
  - hostname: host1
    ip: 10.0.0.1
  unavailability:
    start:
      nanoseconds: 1500000000000000000
    duration:
      nanoseconds: 3600000000000
`)

	a := api.NewMockApi()
	assert.Nil(t, ApplySchedule(a, file))
	assert.Equal(t, 1, a.PutCount)

	s, _ := a.GetSchedule()
	assert.Len(t, s.Windows, 1)
	assert.Equal(t, []api.MachineID{{Hostname: "host1", IP: "10.0.0.1"}}, s.Windows[0].MachineIDs)
	assert.Equal(t, time.Hour, s.Windows[0].Unavailability.Duration.Duration)
}

func TestApplyScheduleInvalid(t *testing.T) {
	file := writeFile(t, "maintenance.yml", `
windows:
- machine_ids: []
  unavailability:
    start:
      nanoseconds: 0
    duration:
      nanoseconds: 0
- machine_ids:
  - hostname: host1
  - hostname: host1
  unavailability:
    start:
      nanoseconds: 0
    duration:
      nanoseconds: 0
`)

	a := api.NewMockApi()
	err := ApplySchedule(a, file)

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "window 0: no machine ids")
	assert.Contains(t, err.Error(), "scheduled more than once")
	assert.Equal(t, 0, a.PutCount)
}

func TestApplyScheduleMissingFile(t *testing.T) {
	a := api.NewMockApi()
	assert.NotNil(t, ApplySchedule(a, filepath.Join(t.TempDir(), "nope.yml")))
}
