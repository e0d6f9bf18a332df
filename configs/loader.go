package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE config files lazily. Files earlier in the list take precedence.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() ([]rootInfo, error) {
			return loadRoots(filePaths, schemaSrc)
		}),
	}
}

func loadRoots(filePaths []string, schemaSrc string) (ret []rootInfo, err error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		// closed, so unknown fields in config files are errors
		schema = ctx.CompileString("close({"+schemaSrc+"})", cue.Filename("schema.cue"))
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("config schema: %w", err)
		}
	}

	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", filePath, err)
		}

		value := ctx.CompileBytes(
			content,
			cue.Filename(filePath),
		)
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("config %s: %w", filePath, err)
		}

		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, fmt.Errorf("config %s: %w", filePath, err)
			}
		}

		ret = append(ret, rootInfo{
			value: value,
			path:  filePath,
		})
	}

	return
}

// values yields the value at path from each file that defines it.
func (l Loader) values(path string) iter.Seq2[rootInfo, error] {
	return func(yield func(rootInfo, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(rootInfo{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(rootInfo{value: value, path: info.path}, nil) {
				return
			}
		}
	}
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		for info, err := range l.values(path) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&info.value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the value at path from the first file defining it.
func (l Loader) AssignFirst(path string, target any) error {
	for info, err := range l.values(path) {
		if err != nil {
			return err
		}
		if err := info.value.Decode(target); err != nil {
			return fmt.Errorf("config %s: %s: %w", info.path, path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
