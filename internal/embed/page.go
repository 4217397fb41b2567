// Package embed hosts the player page: a sandboxed iframe around a game's
// embed URL served from loopback, so the terminal player view has a real frame
// to hand to the system browser.
package embed

import (
	"html/template"
	"net/url"
)

// Permissions is the capability allow-list granted to embedded games.
const Permissions = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; fullscreen"

// Sandbox restricts the frame to what typical browser games need. Top-level
// navigation and modal dialogs stay blocked.
const Sandbox = "allow-scripts allow-same-origin allow-pointer-lock allow-forms allow-popups"

// ControlHint is one static key hint shown next to the player.
type ControlHint struct {
	Label string
	Keys  string
}

// Controls lists the generic key hints. They do not depend on the game.
var Controls = []ControlHint{
	{Label: "Movement", Keys: "WASD / Arrows"},
	{Label: "Action", Keys: "Space / Mouse"},
	{Label: "Pause", Keys: "Esc / P"},
	{Label: "Fullscreen", Keys: "F"},
}

type pageData struct {
	Title       string
	IframeURL   string
	Permissions string
	Sandbox     string
	Controls    []ControlHint
}

// frameOrigin returns scheme://host for raw, or "" when it cannot be parsed.
func frameOrigin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

var playerTemplate = template.Must(template.New("player").Parse(playerHTML))

const playerHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} - Nexus Games</title>
<style>
body{margin:0;background:#0a0a0a;color:#f4f4f5;font-family:system-ui,sans-serif}
main{max-width:80rem;margin:0 auto;padding:2rem 1rem;display:flex;flex-direction:column;gap:1.5rem}
.bar{display:flex;align-items:center;justify-content:space-between}
.now{color:#71717a}
.frame{position:relative;width:100%;aspect-ratio:16/9;background:#000;border:1px solid #ffffff1a;border-radius:1rem;overflow:hidden}
.frame iframe{width:100%;height:100%;border:0}
.controls{display:grid;grid-template-columns:repeat(4,1fr);gap:1rem}
.hint{padding:.75rem;border-radius:.75rem;background:#ffffff0d}
.hint p{margin:0}.hint .label{font-size:.75rem;color:#71717a;text-transform:uppercase;font-weight:700}
a{color:#34d399}
</style>
</head>
<body>
<main>
<div class="bar">
<div><h2>{{.Title}}</h2><p class="now">Now Playing</p></div>
<a href="{{.IframeURL}}" target="_blank" rel="noopener noreferrer" title="Open in new tab">Open in new tab</a>
</div>
<div class="frame">
<iframe src="{{.IframeURL}}" title="{{.Title}}" allow="{{.Permissions}}" sandbox="{{.Sandbox}}" referrerpolicy="no-referrer"></iframe>
</div>
<section>
<h4>Game Controls</h4>
<div class="controls">
{{range .Controls}}<div class="hint"><p class="label">{{.Label}}</p><p>{{.Keys}}</p></div>
{{end}}</div>
</section>
</main>
</body>
</html>
`
