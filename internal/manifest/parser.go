package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads the manifest at path and decodes it into a Quest.
// The returned error is always a *LoadError.
func Load(path string) (*Quest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: FileUnavailable, Path: path, Err: err}
	}
	return Decode(data, path)
}

// Decode decodes manifest bytes into a Quest. name identifies the source in
// error messages and is usually the file path.
func Decode(data []byte, name string) (*Quest, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Kind: SyntaxInvalid, Path: name, Err: withPosition(err)}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	if err := checkShape(raw); err != nil {
		return nil, &LoadError{Kind: ShapeInvalid, Path: name, Err: err}
	}

	var q Quest
	if err := toml.Unmarshal(data, &q); err != nil {
		return nil, &LoadError{Kind: ShapeInvalid, Path: name, Err: withPosition(err)}
	}
	attachStageExtras(&q, raw)

	return &q, nil
}

// withPosition prefixes go-toml decode errors with their line and column.
func withPosition(err error) error {
	var de *toml.DecodeError
	if errors.As(err, &de) {
		row, col := de.Position()
		return fmt.Errorf("line %d, column %d: %w", row, col, err)
	}
	return err
}

// attachStageExtras copies stage keys without a dedicated field into
// Stage.Extra. The shape check guarantees stages is an array of tables.
func attachStageExtras(q *Quest, raw map[string]any) {
	stages, _ := raw[keyStages].([]any)
	for i, s := range stages {
		if i >= len(q.Stages) {
			break
		}
		table, ok := s.(map[string]any)
		if !ok {
			continue
		}
		for k, v := range table {
			if k == keyLabel || k == keyDescription {
				continue
			}
			if q.Stages[i].Extra == nil {
				q.Stages[i].Extra = make(map[string]any)
			}
			q.Stages[i].Extra[k] = v
		}
	}
}
