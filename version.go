package zksync

import (
	"fmt"
	"io"
	"runtime"
)

// AppName is the name the node reports in its version and logs
const AppName = "zks-node"

// Populated during build with -ldflags "-X github.com/test091/zksync-era.Version=..."
var (
	Version   = "v0.1.0"
	GitRev    = "undefined"
	GitBranch = "undefined"
	BuildDate = "undefined"
)

// PrintVersion prints version info into the provided io.Writer.
func PrintVersion(w io.Writer) {
	fmt.Fprint(w, GetVersion().String())
}

// FullVersion describes the running binary
type FullVersion struct {
	Version   string
	GitRev    string
	GitBranch string
	BuildDate string
	GoVersion string
	OS        string
	Arch      string
}

func GetVersion() FullVersion {
	return FullVersion{
		Version:   Version,
		GitRev:    GitRev,
		GitBranch: GitBranch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

func (f FullVersion) String() string {
	return fmt.Sprintf("%s %s\n"+
		"Git revision: %s (%s)\n"+
		"Built:        %s with %s\n"+
		"OS/Arch:      %s/%s\n",
		AppName, f.Version,
		f.GitRev, f.GitBranch,
		f.BuildDate, f.GoVersion,
		f.OS, f.Arch)
}

// LogFields returns the version as key value pairs for structured logs
func (f FullVersion) LogFields() []interface{} {
	return []interface{}{
		"app", AppName,
		"version", f.Version,
		"gitRevision", f.GitRev,
		"gitBranch", f.GitBranch,
		"built", f.BuildDate,
		"goVersion", f.GoVersion,
		"os/arch", f.OS + "/" + f.Arch,
	}
}
