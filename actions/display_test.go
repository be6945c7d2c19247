package actions

import (
	"testing"
	"time"

	"github.com/praekeltfoundation/dcosctl-drain/api"
	"github.com/stretchr/testify/assert"
)

func TestStatusPrint(t *testing.T) {
	a := api.NewMockApi()
	a.SetDraining(machine("host1"))
	assert.Nil(t, Drain(a, machine("host2")))

	assert.Nil(t, Status(a))
}

func TestListSchedulePrint(t *testing.T) {
	a := api.NewMockApi()
	assert.Nil(t, Cordon(a, machine("host1"), time.Hour))

	assert.Nil(t, ListSchedule(a, false))
	assert.Nil(t, ListSchedule(a, true))
}
