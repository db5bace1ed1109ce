package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID     = "build_id"
	KeyTheme       = "theme"
	KeyEnvironment = "environment"
	KeyBaseURL     = "base_url"
	KeyPath        = "path"
	KeyLanguage    = "language"
	KeyEvent       = "event"
	KeyModule      = "module"
	KeyFormat      = "format"
	KeyDurationMS  = "duration_ms"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Theme(name string) slog.Attr      { return slog.String(KeyTheme, name) }
func Environment(e string) slog.Attr   { return slog.String(KeyEnvironment, e) }
func BaseURL(u string) slog.Attr       { return slog.String(KeyBaseURL, u) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Language(l string) slog.Attr      { return slog.String(KeyLanguage, l) }
func Event(name string) slog.Attr      { return slog.String(KeyEvent, name) }
func Module(id string) slog.Attr       { return slog.String(KeyModule, id) }
func Format(f string) slog.Attr        { return slog.String(KeyFormat, f) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
