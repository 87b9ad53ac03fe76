package log

// Level indicates the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace is used for per-operation events such as a heap buffer being resized.
	LevelTrace Level = iota

	// LevelDebug is used for events which are useful when debugging how a collection is being used.
	LevelDebug

	// LevelInfo is used for coarse-grained informational messages.
	LevelInfo

	// LevelWarning is used for expected but potentially interesting events, for example a capacity hint being floored.
	LevelWarning

	// LevelError is used for errors which still allow the caller to continue.
	LevelError
)

// String returns the short, fixed width prefix used when printing the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	}

	return "UNKN"
}
