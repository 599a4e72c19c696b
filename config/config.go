package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/test091/zksync-era/batchsync"
	zkcommon "github.com/test091/zksync-era/common"
	"github.com/test091/zksync-era/fee"
	"github.com/test091/zksync-era/gasprice"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/logindex"
	"github.com/test091/zksync-era/logproof"
	"github.com/test091/zksync-era/rpc"
	"github.com/test091/zksync-era/simulator"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagOutputFile is the flag for the output file
	FlagOutputFile = "output"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagMinConfig prints only the mandatory vars
	FlagMinConfig = "min"

	deprecatedFieldCacheTTL = "LogProof.CacheTTL is not supported. Trees are only evicted by LRU, use LogProof.CacheSize."

	deprecatedFieldGasPriceURL = "GasPrice.URL is deprecated. Use GasPrice.URLRPCL1 instead."

	EnvVarPrefix       = "ZKS"
	ConfigType         = "toml"
	SaveConfigFileName = "zks_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

type ForbiddenField struct {
	FieldName string
	Reason    string
}

var (
	forbiddenFieldsOnConfig = []ForbiddenField{
		{
			FieldName: "logproof.cachettl",
			Reason:    deprecatedFieldCacheTTL,
		},
		{
			FieldName: "gasprice.url",
			Reason:    deprecatedFieldGasPriceURL,
		},
	}
)

/*
Config represents the configuration of the zks node.
The file is [TOML format]; the defaults are in DefaultValues and every
field can be overridden with an env var prefixed by ZKS, e.g. ZKS_FEE_MAXGASPERTX.

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config `mapstructure:"Log"`
	// Common Config: chain ids and well known contracts
	Common zkcommon.Config `mapstructure:"Common"`
	// RPC is the config for the RPC server
	RPC jRPC.Config `mapstructure:"RPC"`
	// ZKS holds the deadlines of the zks endpoints
	ZKS rpc.Config `mapstructure:"ZKS"`
	// LogIndex is the storage of sealed batches and their L2->L1 logs
	LogIndex logindex.Config `mapstructure:"LogIndex"`
	// BatchSync pulls the sealed batches and their logs from the L2 node into the log index
	BatchSync batchsync.Config `mapstructure:"BatchSync"`
	// LogProof configures the Merkle tree height and the tree cache
	LogProof logproof.Config `mapstructure:"LogProof"`
	// Simulator is the L2 execution node used to run candidate transactions
	Simulator simulator.Config `mapstructure:"Simulator"`
	// GasPrice configures the L1 gas price adjuster
	GasPrice gasprice.Config `mapstructure:"GasPrice"`
	// Fee configures the gas search and the pubdata pricing
	Fee fee.Config `mapstructure:"Fee"`
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFileFromString decodes an already rendered config
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	expectedKeys, err := defaultKeys()
	if err != nil {
		return nil, err
	}
	err = loadString(cfg, configFileData, configType, true, EnvVarPrefix, expectedKeys)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfigToString(cfg Config) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadFile merges the defaults with the given files, renders the vars and decodes the result.
// If saveConfigPath is set the rendered config is written there as SaveConfigFileName
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+2) //nolint:mnd
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewConfigRender(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		err = os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(renderedCfg, ConfigType)
}

// defaultKeys returns the keys present in the rendered defaults; any other key in a
// config file is reported, since it would be silently ignored
func defaultKeys() ([]string, error) {
	rendered, err := NewConfigRender([]FileData{
		{Name: "default_mandatory_vars", Content: DefaultMandatoryVars},
		{Name: "default_vars", Content: DefaultVars},
		{Name: "default_values", Content: DefaultValues},
	}, EnvVarPrefix).Render()
	if err != nil {
		return nil, fmt.Errorf("error rendering default values. Err: %w", err)
	}
	v := viper.New()
	v.SetConfigType(ConfigType)
	if err := v.ReadConfig(bytes.NewBufferString(rendered)); err != nil {
		return nil, err
	}
	return v.AllKeys(), nil
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string, expectedKeys []string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	err := v.ReadConfig(bytes.NewBufferString(configData))
	if err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}

	err = v.Unmarshal(cfg, decodeHooks...)
	if err != nil {
		return err
	}

	for _, field := range getUnexpectedFields(v.AllKeys(), expectedKeys) {
		forbbidenInfo := getForbiddenField(field)
		if forbbidenInfo != nil {
			log.Warnf("forbidden field %s in config file: %s", field, forbbidenInfo.Reason)
		} else {
			log.Debugf("field %s in config file doesnt have a default value", field)
		}
	}
	return nil
}

func getForbiddenField(fieldName string) *ForbiddenField {
	for _, forbiddenField := range forbiddenFieldsOnConfig {
		if forbiddenField.FieldName == fieldName || strings.HasPrefix(fieldName, forbiddenField.FieldName) {
			return &forbiddenField
		}
	}
	return nil
}

func getUnexpectedFields(keysOnFile, expectedConfigKeys []string) []string {
	wrongFields := make([]string, 0)
	for _, key := range keysOnFile {
		if !contains(expectedConfigKeys, key) {
			wrongFields = append(wrongFields, key)
		}
	}
	return wrongFields
}

// GenerateJSONSchema returns the JSON schema of Config, keyed by the same names used in the TOML files
func GenerateJSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
		FieldNameTag:   "mapstructure",
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(common.Address{}) {
				return &jsonschema.Schema{
					Type:    "string",
					Pattern: "^0x[0-9a-fA-F]{40}$",
				}
			}
			return nil
		},
	}
	schema := r.Reflect(&Config{})
	schema.Title = "zks node config file"
	return json.MarshalIndent(schema, "", "  ")
}
