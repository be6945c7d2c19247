package main

import (
	"os"

	"github.com/praekeltfoundation/dcosctl-drain/cli"

	log "github.com/sirupsen/logrus"
)

func main() {
	app := cli.NewApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
