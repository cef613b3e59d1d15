package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/renderer"
	"gallerycrawl/pkg/game/state"
)

// styleClasses maps glyph styles to CSS classes
var styleClasses = map[renderer.TextStyle]string{
	renderer.StyleObserver: "observer",
	renderer.StyleFloor:    "floor",
	renderer.StyleWall:     "wall",
	renderer.StyleDoor:     "door",
	renderer.StyleExhibit:  "exhibit",
	renderer.StyleFog:      "fog",
}

// RenderScreenshotHTML renders the view around the observer as an HTML page
func RenderScreenshotHTML(lvl *state.Level, rows, cols int) string {
	snap := renderer.NewSnapshot(lvl)
	view := snap.Viewport(rows, cols)

	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Gallery Crawl - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .observer { color: #00ff00; font-weight: bold; }
        .wall { color: #4466aa; }
        .floor { color: #888; }
        .door { color: #ffff00; font-weight: bold; }
        .exhibit { color: #ff66ff; font-weight: bold; }
        .fog { color: #333; }
        .void { color: #1a1a2e; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	html.WriteString(fmt.Sprintf(`    <div class="header">Wing %d &middot; seed %d</div>`+"\n", lvl.Depth, lvl.Seed))
	html.WriteString(`    <div class="map-container">` + "\n")

	for y := view.MaxY() - 1; y >= view.MinY(); y-- {
		html.WriteString(`        <div class="map-row">`)
		for x := view.MinX(); x < view.MaxX(); x++ {
			icon, style := snap.Glyph(world.C(x, y))
			class, ok := styleClasses[style]
			if !ok {
				class = "void"
			}
			html.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		html.WriteString("</div>\n")
	}
	html.WriteString("    </div>\n")

	if len(lvl.Messages) > 0 {
		html.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range lvl.Messages {
			html.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", escapeHTML(msg)))
		}
		html.WriteString("    </div>\n")
	}

	html.WriteString("</body>\n</html>\n")
	return html.String()
}

// SaveScreenshotHTML writes a timestamped screenshot into dir and returns its path
func SaveScreenshotHTML(lvl *state.Level, dir string, rows, cols int) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(path, []byte(RenderScreenshotHTML(lvl, rows, cols)), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// escapeHTML escapes special HTML characters
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
