package events

import "github.com/atomicstack/nexus-games/internal/logging"

type EmbedTracer struct{}

var Embed = EmbedTracer{}

func (EmbedTracer) Start(addr string) {
	logging.Trace("embed.start", map[string]interface{}{"addr": addr})
}

func (EmbedTracer) Request(method, path string, status int) {
	logging.Trace("embed.request", map[string]interface{}{
		"method": method,
		"path":   path,
		"status": status,
	})
}

func (EmbedTracer) Stop(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("embed.stop", payload)
}
