package version

import (
	"log"
)

var (
	Name        = "maestro"
	Description = "Provider integration core for the Maestro workbench"
	Version     = "v0.1.0"
	Commit      = "none"
	Date        = "nowish"
)

const (
	GithubHomeUri   = "https://github.com/tmellor/maestro"
	GithubLatestUri = "https://github.com/tmellor/maestro/releases/latest"
)

func PrintVersionInfo(extendedInfo bool, vlog *log.Logger) {
	vlog.Printf("%s %s — %s", Name, Version, Description)
	if extendedInfo {
		vlog.Printf(" Commit: %s", Commit)
		vlog.Printf("  Built: %s", Date)
		vlog.Printf("   Home: %s", GithubHomeUri)
	}
}
