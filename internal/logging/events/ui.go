package events

import "github.com/atomicstack/nexus-games/internal/logging"

type ViewTracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	View    = ViewTracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (ViewTracer) Select(gameID, title, filter string) {
	logging.Trace("view.select", map[string]interface{}{
		"game":   gameID,
		"title":  title,
		"filter": filter,
	})
}

func (ViewTracer) Back(gameID, filter string) {
	logging.Trace("view.back", map[string]interface{}{"game": gameID, "filter": filter})
}

func (ViewTracer) Cursor(cursor int) {
	logging.Trace("view.cursor", map[string]interface{}{"cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string, visible int) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter, "visible": visible})
}

func (FilterTracer) Backspace(filter string, visible int) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter, "visible": visible})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
