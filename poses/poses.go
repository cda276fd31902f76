// Package poses supplies the ordered pose list used for variant generation.
package poses

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyPoseList signals a pose file that parsed but contained no entries.
var ErrEmptyPoseList = errors.New("poses: pose file contains no poses")

// Default returns the built-in pose list, in generation order. Labels are
// opaque text handed to the model verbatim.
func Default() []string {
	return []string{
		"standing straight, arms relaxed at the sides, looking at the camera",
		"walking towards the camera, mid-stride",
		"hands in pockets, weight shifted onto one leg",
		"three-quarter turn, looking back over the shoulder",
		"sitting on a stool, legs crossed, hands resting on the knee",
		"leaning against a wall with arms crossed",
		"one hand on hip, the other adjusting the collar",
		"profile view, chin slightly raised",
	}
}

// Load returns the pose list for a session. An empty path means the built-in
// list; otherwise path must name a YAML file containing a sequence of
// strings, which replaces the built-in list entirely.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("poses: read %s: %w", path, err)
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("poses: parse %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPoseList, path)
	}
	return list, nil
}
