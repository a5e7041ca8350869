package livereload

import (
	"encoding/json"
	"fmt"

	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// DefaultPath is where the hub is mounted
const DefaultPath = "/__livereload"

const clientJS = `(function(){` +
	`var url=(location.protocol==="https:"?"wss:":"ws:")+"//"+location.host+%s;` +
	`var connected=false;` +
	`function connect(){` +
	`var ws=new WebSocket(url);` +
	`ws.onopen=function(){if(connected){location.reload()}connected=true};` +
	`ws.onmessage=function(e){var m=JSON.parse(e.data);if(m.type==="reload"){location.reload()}};` +
	`ws.onclose=function(){setTimeout(connect,1000)}` +
	`}` +
	`connect()` +
	`})();`

// Script returns the <script> element that connects a page to the hub at
// path. The page reloads on a reload message and after the server restarts.
func Script(path string) *vdom.VNode {
	if path == "" {
		path = DefaultPath
	}
	// json.Marshal escapes <, > and & so the literal cannot end the script
	quoted, _ := json.Marshal(path)
	return builder.Script().Data("livereload", "").Text(fmt.Sprintf(clientJS, quoted)).Build()
}
