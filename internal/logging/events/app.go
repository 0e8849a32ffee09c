package events

import "github.com/atomicstack/tmux-popup-select/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) SourceLoaded(source string, options int) {
	logging.Trace("app.source", map[string]interface{}{"source": source, "options": options})
}

func (AppTracer) Exit(single string, multiple []string) {
	logging.Trace("app.exit", map[string]interface{}{"single": single, "multiple": multiple})
}
