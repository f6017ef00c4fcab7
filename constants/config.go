package constants

// Environment variables
const (
	// EnvDataPath points at the habitat index asset. Accepts a local path or
	// an s3://bucket/key URL.
	EnvDataPath = "DATA_PATH"
	// EnvDataPathAlias is honored for deployments that predate EnvDataPath.
	EnvDataPathAlias = "MAZI_DATA_PATH"
	// EnvCORSAllowOrigins is a comma-separated origin allowlist. "*" allows all.
	EnvCORSAllowOrigins = "CORS_ALLOW_ORIGINS"
	EnvPort             = "PORT"
	EnvHost             = "HOST"
	EnvLogLevel         = "MAZISHARK_LOG_LEVEL"
	EnvDebug            = "MAZISHARK_DEBUG"
)

// Default paths and addresses
const (
	// DataFilename is the habitat index export produced by the notebook.
	DataFilename = "habitat_index_H.json"
	// DefaultDataDir is the bundle directory holding the data asset.
	DefaultDataDir = "data"
	// DefaultDataPath is the default asset location relative to the bundle.
	DefaultDataPath = DefaultDataDir + "/" + DataFilename
	// DefaultConfigPath is the optional local config file.
	DefaultConfigPath = "mazishark.config.json"
	// DefaultManifestPath is the deployment descriptor at the repo root.
	DefaultManifestPath = "vercel.json"
	DefaultHost         = ""
	DefaultPort         = 8080
)
