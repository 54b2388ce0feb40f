package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// APIPath is the base path for the public JSON API.
	APIPath = "/api"

	// AdminPath is the base path for the session-gated admin API.
	AdminPath = APIPath + "/admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
