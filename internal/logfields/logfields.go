package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyParseID    = "parse_id"
	KeyPath       = "path"
	KeyBytes      = "bytes"
	KeySize       = "size"
	KeyEncoding   = "encoding"
	KeyOutcome    = "outcome"
	KeyComplete   = "complete"
	KeyOffset     = "offset"
	KeyLine       = "line"
	KeyColumn     = "column"
	KeyConstruct  = "construct"
	KeyNodes      = "nodes"
	KeyDepth      = "depth"
	KeyDurationMS = "duration_ms"
	KeyEvent      = "event"
	KeyListen     = "listen"
	KeyConfigFile = "config_file"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ParseID(id string) slog.Attr     { return slog.String(KeyParseID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func Size(human string) slog.Attr     { return slog.String(KeySize, human) }
func Encoding(e string) slog.Attr     { return slog.String(KeyEncoding, e) }
func Outcome(o string) slog.Attr      { return slog.String(KeyOutcome, o) }
func Complete(b bool) slog.Attr       { return slog.Bool(KeyComplete, b) }
func Offset(o int) slog.Attr          { return slog.Int(KeyOffset, o) }
func Line(l int) slog.Attr            { return slog.Int(KeyLine, l) }
func Column(c int) slog.Attr          { return slog.Int(KeyColumn, c) }
func Construct(c string) slog.Attr    { return slog.String(KeyConstruct, c) }
func Nodes(n int) slog.Attr           { return slog.Int(KeyNodes, n) }
func Depth(d int) slog.Attr           { return slog.Int(KeyDepth, d) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Event(e string) slog.Attr        { return slog.String(KeyEvent, e) }
func Listen(addr string) slog.Attr    { return slog.String(KeyListen, addr) }
func ConfigFile(p string) slog.Attr   { return slog.String(KeyConfigFile, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
