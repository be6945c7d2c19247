package cli

import (
	"time"

	"github.com/praekeltfoundation/dcosctl-drain/api"
	"github.com/praekeltfoundation/dcosctl-drain/config"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func NewApp() *App {
	app := &App{
		cli:    cli.NewApp(),
		Config: config.NewConfig(),
	}
	app.setup()
	return app
}

type App struct {
	cli    *cli.App
	Api    api.MaintenanceAPI
	Config *config.Config
}

func (app *App) setup() {
	app.cli.Name = "dcosctl"
	app.cli.Version = config.VERSION
	app.cli.Usage = "work with the mesos maintenance primitives of old DC/OS versions."

	app.cli.Flags = []cli.Flag{
		cli.StringFlag{Name: "log-level, l", Value: "info", EnvVar: "LOG_LEVEL", Usage: "log level [debug, info, warn, error]"},
		cli.StringFlag{Name: "mesos-url", Value: "", EnvVar: "MESOS_URL", Usage: "URL for the mesos master"},
		cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, EnvVar: "MESOS_TIMEOUT", Usage: "timeout for requests to the mesos master"},
	}
	app.cli.Before = func(c *cli.Context) error {
		if c.GlobalString("mesos-url") != "" {
			app.Config.MesosURL = c.GlobalString("mesos-url")
		}

		if c.GlobalDuration("timeout") != 0 {
			app.Config.Timeout = c.GlobalDuration("timeout")
		}

		app.Config.LogLevel = c.GlobalString("log-level")

		// tests inject a mock api before running commands
		if app.Api == nil {
			app.Api = api.NewMesosApi(&api.Config{
				MesosURL: app.Config.MesosURL,
				Timeout:  app.Config.Timeout,
			})
		}

		switch app.Config.LogLevel {
		case "debug":
			log.SetLevel(log.DebugLevel)
			break
		case "info":
			log.SetLevel(log.InfoLevel)
			break
		case "warn":
			log.SetLevel(log.WarnLevel)
			break
		case "error":
			log.SetLevel(log.ErrorLevel)
			break
		default:
			log.SetLevel(log.InfoLevel)
		}

		return nil
	}

	app.cli.Commands = []cli.Command{
		app.CordonCmd(),
		app.UncordonCmd(),
		app.DrainCmd(),
		app.UpCmd(),
		app.StatusCmd(),
		app.ScheduleCmd(),
	}
}

// Run executes the CLI against the provided arguments. They are passed in
// explicitly so tests can drive the app without touching os.Args.
func (app *App) Run(args []string) error {
	return app.cli.Run(args)
}
