package ui

// iconTable is filled once at package init and only read afterwards.
var iconTable = map[string]string{
	"steps":    "👣",
	"force":    "🦶",
	"profile":  "👤",
	"menu":     "☰",
	"logout":   "⏻",
	"calories": "🔥",
	"distance": "📍",
	"time":     "⏱",
}

// Icon returns the glyph for name, or "" when there is none.
func Icon(name string) string { return iconTable[name] }
