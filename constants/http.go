package constants

// HTTP headers
const (
	HeaderContentType      = "Content-Type"
	HeaderContentDisp      = "Content-Disposition"
	HeaderOrigin           = "Origin"
	HeaderVary             = "Vary"
	HeaderRequestID        = "X-Request-ID"
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"
)

// Content types
const (
	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"
	ContentTypeText = "text/plain"
)

// CORS values
const (
	CORSAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	CORSAllowHeaders = "Content-Type, Authorization"
)
