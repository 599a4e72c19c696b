package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/test091/zksync-era/log"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// typeMark is appended to an unquoted var so the TOML parser sees a string
	typeMark = ":int"
)

var (
	ErrCycleVars                 = errors.New("cycle vars")
	ErrMissingVars               = errors.New("missing vars")
	ErrUnsupportedConfigFileType = errors.New("unsupported config file type")

	unquotedVarRe = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	quotedVarRe   = regexp.MustCompile(`=\s*\"\{\{([^}:]+)` + typeMark + `\}\}\"`)
	markedVarRe   = regexp.MustCompile(`\{\{([^}:]+)` + typeMark + `\}\}`)
)

// FileData is a named config content, already in TOML
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges config files (later files override earlier ones) and
// resolves the {{var}} references between values and from the environment
type ConfigRender struct {
	FilesData []FileData
	// LookupEnvFunc resolves env vars, os.LookupEnv outside tests
	LookupEnvFunc func(key string) (string, bool)
	EnvPrefix     string
}

func NewConfigRender(filesData []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:     filesData,
		LookupEnvFunc: os.LookupEnv,
		EnvPrefix:     envPrefix,
	}
}

// Render merges all the files and resolves the vars
func (c *ConfigRender) Render() (string, error) {
	mergedData, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(mergedData)
}

// Merge loads every file on the same koanf instance and marshals the result back to TOML
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range c.FilesData {
		dataToml := markVars(data.Content)
		if err := k.Load(rawbytes.Provider([]byte(dataToml)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err:%v. FileData: %v", data.Name, err, dataToml)
			return "", fmt.Errorf("fail to load converted template %s to toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return unquoteVars(string(marshaled)), nil
}

// ResolveVars replaces every {{var}} by the env var or the config value with that key.
// A var without value is ErrMissingVars, vars that only reference each other are ErrCycleVars
func (c *ConfigRender) ResolveVars(fullConfigData string) (string, error) {
	tpl, valuesDefined, err := c.readTemplateAndDefinedValues(fullConfigData)
	if err != nil {
		return "", err
	}
	rendered := unmarkVars(c.executeTemplate(tpl, valuesDefined))
	if unresolved := c.GetUnresolvedVars(tpl, valuesDefined); len(unresolved) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", unresolved, ErrMissingVars)
	}
	// values may point to other vars, A={{B}} B={{C}}: iterate until none is left
	finalConfigData, err := c.ResolveCycle(rendered)
	if err != nil {
		return fullConfigData, err
	}
	return finalConfigData, nil
}

// ResolveCycle renders the data again until no var is left. A pass that does not
// reduce the number of vars means they form a cycle
func (c *ConfigRender) ResolveCycle(partialResolvedConfigData string) (string, error) {
	data := unquoteVars(partialResolvedConfigData)
	pendingVars := c.GetVars(data)
	if len(pendingVars) == 0 {
		return partialResolvedConfigData, nil
	}
	log.Debugf("ResolveCycle: pending vars: %v", pendingVars)
	for len(pendingVars) > 0 {
		tpl, valuesDefined, err := c.readTemplateAndDefinedValues(data)
		if err != nil {
			log.Errorf("resolveCycle: fails readTemplateAndDefinedValues. Err: %v. Data:%s", err, data)
			return "", fmt.Errorf("fails to read template ResolveCycle. Err: %w", err)
		}
		data = unmarkVars(unquoteVars(c.executeTemplate(tpl, valuesDefined)))
		previous := len(pendingVars)
		pendingVars = c.GetVars(data)
		if len(pendingVars) == previous {
			return partialResolvedConfigData, fmt.Errorf("not resolved cycle vars: %v. Err: %w", pendingVars, ErrCycleVars)
		}
	}
	return data, nil
}

// readTemplateAndDefinedValues expects the vars unquoted: A={{B}}, not A="{{B}}"
func (c *ConfigRender) readTemplateAndDefinedValues(data string) (*fasttemplate.Template,
	map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err:%w", err)
	}
	out := markVars(data)
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(out)), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing data koanf.Load. Content: %s. Err: %w", out, err)
	}
	return tpl, k.All(), nil
}

// markVars turns A={{B}} into A="{{B:int}}" so it is valid TOML
func markVars(data string) string {
	return unquotedVarRe.ReplaceAllString(data, `= "{{${1}`+typeMark+`}}"`)
}

// unquoteVars reverts markVars
func unquoteVars(data string) string {
	return quotedVarRe.ReplaceAllString(data, "= {{${1}}}")
}

// unmarkVars drops the type mark of vars that were rendered inside a string
func unmarkVars(data string) string {
	return markedVarRe.ReplaceAllString(data, "{{${1}}}")
}

func (c *ConfigRender) executeTemplate(tpl *fasttemplate.Template, data map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := c.findTagInEnvironment(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := data[tag]; ok {
			return fmt.Fprintf(w, "%v", v)
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

// GetUnresolvedVars returns the vars in tpl that are neither in data nor in the environment
func (c *ConfigRender) GetUnresolvedVars(tpl *fasttemplate.Template, data map[string]interface{}) []string {
	var unresolved []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if _, ok := c.findTagInEnvironment(tag); ok {
			return 0, nil
		}
		if _, ok := data[tag]; !ok && !contains(unresolved, tag) {
			unresolved = append(unresolved, tag)
		}
		return 0, nil
	})
	return unresolved
}

// GetVars returns every var occurrence in configData
func (c *ConfigRender) GetVars(configData string) []string {
	tpl, err := fasttemplate.NewTemplate(configData, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})
	return vars
}

func (c *ConfigRender) findTagInEnvironment(tag string) (string, bool) {
	return c.LookupEnvFunc(c.EnvPrefix + "_" + strings.ReplaceAll(tag, ".", "_"))
}

func contains(vars []string, search string) bool {
	for _, v := range vars {
		if v == search {
			return true
		}
	}
	return false
}

func readFileToString(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
