package app

// Supported table sizes. Kept centralized so local runs can adjust the rule
// without touching multiple call sites.
const (
	MinPlayers     = 4
	MaxPlayers     = 6
	DefaultPlayers = 4
)
