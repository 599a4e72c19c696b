package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type renderTestCase struct {
	name           string
	contents       []string
	envVars        map[string]string
	expectedMerged string
	expectedRender string
	expectedError  error
}

func TestConfigRenderMerge(t *testing.T) {
	runRenderCases(t, []renderTestCase{
		{
			name:           "files are merged",
			contents:       []string{"CacheSize=1\n", "TreeHeight=14\n"},
			expectedRender: "CacheSize = 1\nTreeHeight = 14\n",
		},
		{
			name:           "later files override",
			contents:       []string{"CacheSize=1\n", "CacheSize=2\nTreeHeight=14\n", "CacheSize=3\nWindowSize=10\n"},
			expectedRender: "CacheSize = 3\nTreeHeight = 14\nWindowSize = 10\n",
		},
		{
			name:           "last value is an undefined var",
			contents:       []string{"CacheSize=1\n", "CacheSize={{CACHE}}\nTreeHeight=14\n"},
			expectedRender: "CacheSize = {{CACHE}}\nTreeHeight = 14\n",
			expectedError:  ErrMissingVars,
		},
	})
}

func TestConfigRenderDetectCycle(t *testing.T) {
	runRenderCases(t, []renderTestCase{
		{
			name:           "three vars",
			contents:       []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			expectedMerged: "A = {{B}}\nB = {{C}}\nC = {{A}}\n",
			expectedRender: "A = {{B}}\nB = {{C}}\nC = {{A}}\n",
			expectedError:  ErrCycleVars,
		},
		{
			name:           "two vars",
			contents:       []string{"A= {{B}}\n", "B= {{A}}\n"},
			expectedRender: "A = {{B}}\nB = {{A}}\n",
			expectedError:  ErrCycleVars,
		},
		{
			name:           "self reference",
			contents:       []string{"A= {{A}}\n", ""},
			expectedRender: "A = {{A}}\n",
			expectedError:  ErrCycleVars,
		},
	})
}

func TestConfigRenderEnvVars(t *testing.T) {
	runRenderCases(t, []renderTestCase{
		{
			name:           "env var breaks a cycle",
			contents:       []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			envVars:        map[string]string{"UTCR_B": "4"},
			expectedRender: "A = 4\nB = 4\nC = 4\n",
		},
		{
			name:           "env var fills a missing number",
			contents:       []string{"MaxGasPerTx={{MAX_GAS}}\n"},
			envVars:        map[string]string{"UTCR_MAX_GAS": "80000000"},
			expectedRender: "MaxGasPerTx = 80000000\n",
		},
		{
			name:           "env var keeps its quotes",
			contents:       []string{"URL={{L2URL}}\n"},
			envVars:        map[string]string{"UTCR_L2URL": "\"http://l2:3050\""},
			expectedRender: "URL = \"http://l2:3050\"\n",
		},
		{
			name:           "env var wins over a defined value inside a string",
			contents:       []string{"L2URL=\"http://localhost:3050\"\n", "URL=\"{{L2URL}}\"\n"},
			envVars:        map[string]string{"UTCR_L2URL": "http://l2:3050"},
			expectedRender: "L2URL = \"http://localhost:3050\"\nURL = \"http://l2:3050\"\n",
		},
	})
}

func TestConfigRenderTypes(t *testing.T) {
	runRenderCases(t, []renderTestCase{
		{
			name: "numbers, strings and bools keep their type",
			contents: []string{"CacheSize={{SIZE}}\nDBPath=\"{{DIR}}/logindex.sqlite\"\nTraceStateDiffs={{TRACE}}\n",
				"DIR=\"/tmp/zks\"\nSIZE=4\nTRACE=true\n"},
			expectedRender: "CacheSize = 4\nDBPath = \"/tmp/zks/logindex.sqlite\"\nDIR = \"/tmp/zks\"\n" +
				"SIZE = 4\nTRACE = true\nTraceStateDiffs = true\n",
		},
	})
}

func TestConfigRenderSections(t *testing.T) {
	defaults := `
[Simulator]
	URL="http://localhost:3050"
	TraceStateDiffs=false
[GasPrice]
	URLRPCL1="http://localhost:8545"
`
	override := `
[GasPrice]
	URLRPCL1="{{Simulator.URL}}"
`
	runRenderCases(t, []renderTestCase{
		{
			name:     "var referencing another section",
			contents: []string{defaults, override},
			expectedRender: "\n[GasPrice]\n  URLRPCL1 = \"http://localhost:3050\"\n\n" +
				"[Simulator]\n  TraceStateDiffs = false\n  URL = \"http://localhost:3050\"\n",
		},
		{
			name:     "env var of a section key",
			contents: []string{defaults, override},
			envVars:  map[string]string{"UTCR_Simulator_URL": "env"},
			expectedRender: "\n[GasPrice]\n  URLRPCL1 = \"env\"\n\n" +
				"[Simulator]\n  TraceStateDiffs = false\n  URL = \"http://localhost:3050\"\n",
		},
	})
}

func TestConfigRenderConvertFileToToml(t *testing.T) {
	jsonFile := `{
  "L2ChainID": 270,
  "L1ChainID": 9,
  "Bridges": {
    "L2Erc20DefaultBridge": "0x0000000000000000000000000000000000000b0b",
    "L1Erc20DefaultBridge": "0x0000000000000000000000000000000000000a0a"
  }
}
`
	data, err := convertFileToToml(jsonFile, "json")
	require.NoError(t, err)
	require.Equal(t, "L1ChainID = 9.0\nL2ChainID = 270.0\n\n[Bridges]\n"+
		"  L1Erc20DefaultBridge = \"0x0000000000000000000000000000000000000a0a\"\n"+
		"  L2Erc20DefaultBridge = \"0x0000000000000000000000000000000000000b0b\"\n", data)

	_, err = convertFileToToml("a: 1", "yaml")
	require.ErrorIs(t, err, ErrUnsupportedConfigFileType)

	data, err = convertFileToToml("A = 1", "conf")
	require.NoError(t, err)
	require.Equal(t, "A = 1", data)
}

func runRenderCases(t *testing.T, tests []renderTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filesData := make([]FileData, len(tt.contents))
			for i, d := range tt.contents {
				filesData[i] = FileData{Name: fmt.Sprintf("file%d", i), Content: d}
			}
			env := map[string]string{}
			if tt.envVars != nil {
				env = tt.envVars
			}
			sut := &ConfigRender{
				FilesData: filesData,
				LookupEnvFunc: func(key string) (string, bool) {
					v, ok := env[key]
					return v, ok
				},
				EnvPrefix: "UTCR",
			}
			if tt.expectedMerged != "" {
				merged, err := sut.Merge()
				require.NoError(t, err)
				require.Equal(t, tt.expectedMerged, merged)
			}
			res, err := sut.Render()
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			if tt.expectedRender != "" {
				require.Equal(t, tt.expectedRender, res)
			}
		})
	}
}
