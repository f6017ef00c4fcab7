package constants

// Application identity
const (
	AppName    = "mazishark"
	AppVersion = "0.1.0"
)

// JSON formatting
const (
	JSONIndent = "  "
)
