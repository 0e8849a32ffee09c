package events

import "github.com/atomicstack/tmux-popup-select/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Mount(widgetID, handle string) {
	logging.Trace("ui.mount", map[string]interface{}{"widget": widgetID, "handle": handle})
}

func (UITracer) Detach(widgetID, handle string) {
	logging.Trace("ui.detach", map[string]interface{}{"widget": widgetID, "handle": handle})
}

func (UITracer) Focus(widgetID string) {
	logging.Trace("ui.focus", map[string]interface{}{"widget": widgetID})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}
