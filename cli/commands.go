package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/praekeltfoundation/dcosctl-drain/actions"
	"github.com/praekeltfoundation/dcosctl-drain/api"

	"github.com/urfave/cli"
)

func ipFlag() cli.Flag {
	return cli.StringFlag{Name: "ip", Usage: "IP of the node (if different from the hostname)"}
}

func (app *App) CordonCmd() (cmd cli.Command) {
	cmd.Name = "cordon"
	cmd.Usage = "'cordon' a node: schedule it for maintenance"
	cmd.ArgsUsage = "hostname"
	cmd.Flags = []cli.Flag{
		ipFlag(),
		cli.Float64Flag{Name: "duration, d", Value: 3600, Usage: "number of seconds to put the node into maintenance mode (starting from now)"},
	}
	cmd.Action = func(c *cli.Context) error {
		machine, err := machineArg(c)
		if err != nil {
			return err
		}

		duration := time.Duration(c.Float64("duration") * float64(time.Second))
		return scheduleErr(actions.Cordon(app.Api, machine, duration))
	}
	return cmd
}

func (app *App) UncordonCmd() (cmd cli.Command) {
	cmd.Name = "uncordon"
	cmd.Usage = "'uncordon' a node: remove it from the maintenance schedule"
	cmd.ArgsUsage = "hostname"
	cmd.Flags = []cli.Flag{ipFlag()}
	cmd.Action = func(c *cli.Context) error {
		machine, err := machineArg(c)
		if err != nil {
			return err
		}

		return scheduleErr(actions.Uncordon(app.Api, machine))
	}
	return cmd
}

func (app *App) DrainCmd() (cmd cli.Command) {
	cmd.Name = "drain"
	cmd.Usage = "'drain' a node: mark the machine as down"
	cmd.ArgsUsage = "hostname..."
	cmd.Flags = []cli.Flag{ipFlag()}
	cmd.Action = func(c *cli.Context) error {
		machines, err := machineArgs(c)
		if err != nil {
			return err
		}

		return actions.Drain(app.Api, machines...)
	}
	return cmd
}

func (app *App) UpCmd() (cmd cli.Command) {
	cmd.Name = "up"
	cmd.Usage = "mark a node as up: the opposite of drain"
	cmd.ArgsUsage = "hostname..."
	cmd.Flags = []cli.Flag{ipFlag()}
	cmd.Action = func(c *cli.Context) error {
		machines, err := machineArgs(c)
		if err != nil {
			return err
		}

		return actions.Up(app.Api, machines...)
	}
	return cmd
}

func (app *App) StatusCmd() (cmd cli.Command) {
	cmd.Name = "status"
	cmd.Usage = "show machines currently draining or down"
	cmd.Action = func(c *cli.Context) error {
		return actions.Status(app.Api)
	}
	return cmd
}

func (app *App) ScheduleCmd() (cmd cli.Command) {
	cmd.Name = "schedule"
	cmd.Usage = "inspect or replace the maintenance schedule"
	cmd.Subcommands = []cli.Command{
		{
			Name:  "show",
			Usage: "list the scheduled maintenance windows",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "yaml", Usage: "dump the schedule as yaml"},
			},
			Action: func(c *cli.Context) error {
				return actions.ListSchedule(app.Api, c.Bool("yaml"))
			},
		},
		{
			Name:  "apply",
			Usage: "replace the entire schedule with the provided document",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "file, f", Value: "maintenance.yml", Usage: "schedule document to read"},
			},
			Action: func(c *cli.Context) error {
				return scheduleErr(actions.ApplySchedule(app.Api, c.String("file")))
			},
		},
	}
	return cmd
}

func machineArg(c *cli.Context) (api.MachineID, error) {
	host := c.Args().First()
	if host == "" {
		return api.MachineID{}, errors.New("err: hostname not provided")
	}

	return api.NewMachineID(host, c.String("ip")), nil
}

func machineArgs(c *cli.Context) ([]api.MachineID, error) {
	args := c.Args()
	if len(args) == 0 {
		return nil, errors.New("err: hostname not provided")
	}

	if len(args) > 1 && c.String("ip") != "" {
		return nil, errors.New("err: --ip cannot be combined with more than one hostname")
	}

	machines := make([]api.MachineID, 0, len(args))
	for _, host := range args {
		machines = append(machines, api.NewMachineID(host, c.String("ip")))
	}

	return machines, nil
}

// scheduleErr converts the named schedule policy errors into single line
// exit-code-1 failures. Transport errors pass through untouched.
func scheduleErr(err error) error {
	if err != nil && api.IsScheduleErr(err) {
		return cli.NewExitError(fmt.Sprintf("ERROR: %s", err), 1)
	}

	return err
}
