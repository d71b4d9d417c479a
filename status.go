package client

import "github.com/rs/zerolog/log"

// StatusReporter is the external UI collaborator: a loading indicator
// toggled around every network call, plus a transient notification for
// cross-origin failures. Implementations must be safe for concurrent use;
// the client guarantees Started/Finished arrive only on the outermost
// transition of overlapping calls.
type StatusReporter interface {
	LoadingStarted()
	LoadingFinished()
	NotifyCORSBlocked(message string)
}

// logReporter is the default StatusReporter for headless use: loading
// transitions at debug level, CORS notices at warn.
type logReporter struct{}

func (logReporter) LoadingStarted()  { log.Debug().Msg("loading started") }
func (logReporter) LoadingFinished() { log.Debug().Msg("loading finished") }

func (logReporter) NotifyCORSBlocked(message string) {
	log.Warn().Str("notice", message).Msg("cross-origin request blocked")
}
