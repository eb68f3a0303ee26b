package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrDraftsDirRequired    = runtimeconfig.ErrDraftsDirRequired
	ErrPublishedDirRequired = runtimeconfig.ErrPublishedDirRequired
	ErrDirsMustDiffer       = runtimeconfig.ErrDirsMustDiffer
	ErrAuthorRequired       = runtimeconfig.ErrAuthorRequired
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv applies environment overrides on top of the defaults.
func ConfigFromEnv() (Config, error) {
	return runtimeconfig.FromEnv(DefaultConfig())
}
