package zksync

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	data := GetVersion()
	require.NotEmpty(t, data.Version)
	require.NotEmpty(t, data.GitRev)
	require.NotEmpty(t, data.GitBranch)
	require.NotEmpty(t, data.BuildDate)
	require.Equal(t, runtime.Version(), data.GoVersion)
	require.Equal(t, runtime.GOOS, data.OS)
	require.Equal(t, runtime.GOARCH, data.Arch)
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	require.Contains(t, buf.String(), AppName+" "+Version+"\n")
	require.Contains(t, buf.String(), runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionLogFields(t *testing.T) {
	fields := GetVersion().LogFields()
	require.Len(t, fields, 14)
	kv := make(map[string]interface{}, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		require.True(t, ok)
		kv[key] = fields[i+1]
	}
	require.Equal(t, AppName, kv["app"])
	require.Equal(t, Version, kv["version"])
	require.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, kv["os/arch"])
}
