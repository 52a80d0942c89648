// Package log re-exports github.com/luxfi/log so that accumulator,
// update and primegen depend only on github.com/luxfi/rsa-acc/log,
// never on luxfi/log directly.
package log

import (
	"github.com/luxfi/log"
)

// Logger is an alias for log.Logger.
type Logger = log.Logger

// NewNoOpLogger returns a logger that discards everything. It is the
// default used by Accumulator and Update when no logger is supplied.
func NewNoOpLogger() Logger {
	return log.NewNoOpLogger()
}
