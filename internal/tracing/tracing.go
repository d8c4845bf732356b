// Package tracing bridges mustache render notifications to zap.
package tracing

import (
	"go.uber.org/zap"

	"github.com/aescanero/dago-node-render/pkg/mustache"
)

// TagLogger logs every tag and template render at debug level.
// It is safe for concurrent renders since zap loggers are.
type TagLogger struct {
	logger *zap.Logger
}

// NewTagLogger creates a new tag logger
func NewTagLogger(logger *zap.Logger) *TagLogger {
	return &TagLogger{logger: logger.Named("mustache")}
}

func (l *TagLogger) WillRenderTag(_ *mustache.Template, ev mustache.TagEvent) {
	l.logger.Debug("rendering tag", tagFields(ev)...)
}

func (l *TagLogger) DidRenderTag(_ *mustache.Template, ev mustache.TagEvent, output string) {
	l.logger.Debug("rendered tag", append(tagFields(ev), zap.Int("output_bytes", len(output)))...)
}

func (l *TagLogger) WillRenderTemplate(root *mustache.Template) {
	l.logger.Debug("rendering template", zap.Int("source_bytes", len(root.Source())))
}

func (l *TagLogger) DidRenderTemplate(root *mustache.Template, output string) {
	l.logger.Debug("rendered template",
		zap.Int("source_bytes", len(root.Source())),
		zap.Int("output_bytes", len(output)),
	)
}

func tagFields(ev mustache.TagEvent) []zap.Field {
	fields := []zap.Field{
		zap.String("kind", ev.Kind.String()),
		zap.Stringer("key", ev.Invocation),
		zap.Bool("found", ev.Found),
		zap.Stringer("disposition", ev.Disposition),
	}
	if ev.Kind == mustache.SectionTag {
		fields = append(fields, zap.Bool("inverted", ev.Inverted))
	}
	return fields
}
