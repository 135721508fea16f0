package api_common

// Debuggable decides whether error responses carry internal details. config.C satisfies it.
type Debuggable interface {
	IsDebugMode() bool
}

type staticDebuggable bool

func (d staticDebuggable) IsDebugMode() bool { return bool(d) }

func NewStaticDebuggable(debug bool) Debuggable {
	return staticDebuggable(debug)
}
