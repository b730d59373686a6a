package common

import "flag"

var Version = "v1.0.0"

var (
	Port          = flag.Int("port", 12000, "the listening port")
	LogDir        = flag.String("log-dir", "", "specify the log directory")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
)

// Runtime configuration, populated by InitConfig from the config file and
// environment variables.
var (
	DataDir    = "cms-data"
	UploadDir  = "uploads"
	SiteDir    = "."
	AdminDir   = "admin/build"
	JWTSecret  = ""
	EnableGzip = false
)

// Upload constraints, kept identical to the original deployment.
const (
	MaxUploadSize = 10 * 1024 * 1024 // 10 MiB
)

const RoleAdmin = "admin"
