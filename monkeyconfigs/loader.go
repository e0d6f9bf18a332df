package monkeyconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/monkey/configs"
	"github.com/reusee/monkey/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"monkey.cue",
	".monkey.cue",
}

// ConfigPaths returns existing config files, most specific first.
func ConfigPaths() (paths []string) {

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	return
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := ConfigPaths()
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
