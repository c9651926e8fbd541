package mapfile

import "os"

type options struct {
	fileMode os.FileMode
	logger   *Logger
}

// Option configures Open behavior.
type Option func(*options)

// WithFileMode configures the permission bits used when Open has to create
// the backing file. Defaults to 0o644.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithLogger configures the logger used for lifecycle events (open, close).
// The hot read/write path never logs.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
