package configs

import "github.com/reusee/monkey/vars"

// Configurable is a typed config value that knows its own path in config files.
type Configurable interface {
	ConfigPath() string
}

// Resolve returns flag when set, otherwise the first value found at T's path.
func Resolve[T interface {
	comparable
	Configurable
}](loader Loader, flag T) T {
	var zero T
	return vars.FirstNonZero(
		flag,
		First[T](loader, zero.ConfigPath()),
	)
}
