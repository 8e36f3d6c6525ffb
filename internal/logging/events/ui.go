package events

import "github.com/nvasko/sysforge/internal/logging"

type UITracer struct{}

type PopupTracer struct{}

type TaskTracer struct{}

var (
	UI    = UITracer{}
	Popup = PopupTracer{}
	Task  = TaskTracer{}
)

func (UITracer) MenuCursor(view string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"view": view, "cursor": cursor})
}

func (UITracer) MenuEnter(view, label, action string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"view":   view,
		"label":  label,
		"action": action,
	})
}

func (UITracer) ViewChange(from, to string) {
	logging.Trace("view.change", map[string]interface{}{"from": from, "to": to})
}

func (PopupTracer) Open(kind, title string) {
	logging.Trace("popup.open", map[string]interface{}{"kind": kind, "title": title})
}

func (PopupTracer) Close(kind, reason string) {
	logging.Trace("popup.close", map[string]interface{}{"kind": kind, "reason": reason})
}

func (TaskTracer) Start(id, arg string) {
	logging.Trace("task.start", map[string]interface{}{"id": id, "arg": arg})
}

func (TaskTracer) Success(id, info string) {
	logging.Trace("task.success", map[string]interface{}{"id": id, "info": info})
}

func (TaskTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("task.error", map[string]interface{}{"id": id, "error": err.Error()})
}
