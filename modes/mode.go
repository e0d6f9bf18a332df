package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Interactive reports whether terminal decorations like colors may be used.
func (m Mode) Interactive() bool {
	return m == ModeProduction
}
