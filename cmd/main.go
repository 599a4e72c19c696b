package main

import (
	"os"

	zksync "github.com/test091/zksync-era"
	"github.com/test091/zksync-era/common"
	"github.com/test091/zksync-era/config"
	"github.com/test091/zksync-era/log"
	"github.com/urfave/cli/v2"
)

const appName = "zks-node"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	componentsFlag = cli.StringSliceFlag{
		Name:     config.FlagComponents,
		Aliases:  []string{"co"},
		Usage:    "List of components to run",
		Required: false,
		Value:    cli.NewStringSlice(common.RPC, common.GAS_PRICE, common.BATCH_SYNC),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: " + config.SaveConfigFileName + ")",
		Required: false,
	}
	minConfigFlag = cli.BoolFlag{
		Name:     config.FlagMinConfig,
		Usage:    "Only print the mandatory vars",
		Required: false,
	}
	outputFlag = cli.StringFlag{
		Name:     config.FlagOutputFile,
		Aliases:  []string{"o"},
		Usage:    "Write to `FILE` instead of stdout",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = zksync.Version
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the zks node",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &componentsFlag, &saveConfigFlag},
		},
		{
			Name:   "config",
			Usage:  "Print the default configuration",
			Action: configCmd,
			Flags:  []cli.Flag{&minConfigFlag},
		},
		{
			Name:   "config-schema",
			Usage:  "Generate the JSON schema of the configuration",
			Action: configSchemaCmd,
			Flags:  []cli.Flag{&outputFlag},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
