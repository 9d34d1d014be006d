package logfields

import "log/slog"

// Canonical log field names shared across packages.
const (
	KeyRunID      = "run_id"
	KeySidebar    = "sidebar"
	KeyItem       = "item"
	KeyHref       = "href"
	KeyIcon       = "icon"
	KeyDir        = "dir"
	KeyFormat     = "format"
	KeyPath       = "path"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Sidebar(key string) slog.Attr    { return slog.String(KeySidebar, key) }
func Item(index int) slog.Attr        { return slog.Int(KeyItem, index) }
func Href(u string) slog.Attr         { return slog.String(KeyHref, u) }
func Icon(p string) slog.Attr         { return slog.String(KeyIcon, p) }
func Dir(name string) slog.Attr       { return slog.String(KeyDir, name) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
