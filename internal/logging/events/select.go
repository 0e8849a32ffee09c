package events

import "github.com/atomicstack/tmux-popup-select/internal/logging"

type SelectTracer struct{}

type OpenTrigger string

const (
	OpenTriggerClick OpenTrigger = "click"
	OpenTriggerKey   OpenTrigger = "key"
)

type CloseReason string

const (
	CloseReasonToggle  CloseReason = "toggle"
	CloseReasonBlur    CloseReason = "blur"
	CloseReasonEscape  CloseReason = "escape"
	CloseReasonConfirm CloseReason = "confirm"
	CloseReasonSelect  CloseReason = "select"
)

var Select = SelectTracer{}

func (SelectTracer) Open(id string, trigger OpenTrigger) {
	logging.Trace("select.open", map[string]interface{}{"id": id, "trigger": trigger})
}

func (SelectTracer) Close(id string, reason CloseReason) {
	logging.Trace("select.close", map[string]interface{}{"id": id, "reason": reason})
}

func (SelectTracer) Highlight(id string, index int) {
	logging.Trace("select.highlight", map[string]interface{}{"id": id, "index": index})
}

func (SelectTracer) Change(id string, labels []string) {
	logging.Trace("select.change", map[string]interface{}{"id": id, "value": labels})
}

func (SelectTracer) Clear(id string) {
	logging.Trace("select.clear", map[string]interface{}{"id": id})
}

func (SelectTracer) Focus(id, target string) {
	logging.Trace("select.focus", map[string]interface{}{"id": id, "target": target})
}
