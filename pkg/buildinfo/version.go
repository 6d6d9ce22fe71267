// Package buildinfo reports which build of playfair is running.
//
// The values are injected at link time:
//
//	go build -ldflags "-X github.com/matzehuels/playfair/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/playfair/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/playfair/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// The CLI prints them for --version and the web server serves them at
// /version.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build description in a serializable form.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build description.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// Short returns "playfair <version>", with the first seven characters of the
// commit appended when one is known.
func (i Info) Short() string {
	if i.Commit == "" || i.Commit == "none" {
		return "playfair " + i.Version
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("playfair %s (%s)", i.Version, commit)
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
