package rentweave

// Release and GitCommit describe the build. Both can be set with
//
//	go build -ldflags "-X github.com/iov-one/rentweave.GitCommit=$(git rev-parse --short HEAD)"
var (
	Release   = "v0.1.0-dev"
	GitCommit = ""
)

// Version is reported by the ABCI Info call and by rentald version.
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + "+" + GitCommit
}
