package gotrans

const (
	// Name is the application name.
	Name = "gotrans"

	// Description is a short description of the application.
	Description = "Multi-provider translation for editor text"
)

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/ZaguanLabs/gotrans.Version=1.2.0 -X github.com/ZaguanLabs/gotrans.GitCommit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// FullVersion returns Version with the short commit appended when known.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}

// UserAgent is sent by every provider request.
func UserAgent() string {
	return Name + "/" + FullVersion()
}
