package main

import (
	"os"
	"strings"

	"github.com/test091/zksync-era/config"
	"github.com/urfave/cli/v2"
)

func configCmd(cliCtx *cli.Context) error {
	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultMandatoryVars)
	if !cliCtx.Bool(config.FlagMinConfig) {
		defaultConfig.WriteString(config.DefaultVars)
		defaultConfig.WriteString(config.DefaultValues)
	}

	_, err := os.Stdout.WriteString(defaultConfig.String())
	return err
}

func configSchemaCmd(cliCtx *cli.Context) error {
	schema, err := config.GenerateJSONSchema()
	if err != nil {
		return err
	}
	if output := cliCtx.String(config.FlagOutputFile); output != "" {
		return os.WriteFile(output, schema, config.DefaultCreationFilePermissions)
	}
	_, err = os.Stdout.Write(append(schema, '\n'))
	return err
}
