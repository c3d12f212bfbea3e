package constants

// Deployment environments set through env.env.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)
