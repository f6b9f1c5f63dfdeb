package writer

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
	title  string
}

// Option configures a writer.
type Option func(*options)

// WithLogger sets the logger used to report written files.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTitle sets the document title stored in workbook properties.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
