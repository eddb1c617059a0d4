package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
)

const (
	// TypeBuiltin marks scenes constructed in code.
	TypeBuiltin = "builtin"

	// TypeFile marks scenes loaded from a JSON file.
	TypeFile = "file"
)

// Info describes a scene that can be probed
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Path        string `json:"path,omitempty"`
	Shapes      int    `json:"shapes"`
	Problem     string `json:"problem,omitempty"` // Why the file does not build, empty when it does
}

// BuiltinScenes lists the scenes constructed in code
func BuiltinScenes() []Info {
	return []Info{
		{
			ID:          "default",
			Name:        "Default",
			Description: "Small rotated cube resting above a large tilted ground cube",
			Type:        TypeBuiltin,
			Shapes:      NewDefaultScene().GetShapeCount(),
		},
	}
}

// Discover scans dir for *.json scene files. Files that fail to build are still
// listed with Problem set. Results are sorted by name.
func Discover(dir string) ([]Info, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.New("scanning scene directory failed").
			WithType(ErrTypeUnreadableScene).
			WithTag("dir", dir).
			Wrap(err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, errors.New("scanning scene directory failed").
			WithTag("dir", dir).
			Wrap(err)
	}

	scenes := make([]Info, 0, len(files))
	for _, path := range files {
		scenes = append(scenes, describeFile(path))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

func describeFile(path string) Info {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := Info{
		ID:   "file:" + base,
		Name: titleCase(base),
		Type: TypeFile,
		Path: path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		info.Problem = err.Error()
		return info
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		info.Problem = err.Error()
		return info
	}
	if cfg.Name != "" {
		info.Name = cfg.Name
	}
	info.Description = cfg.Description

	s, err := Build(cfg)
	if err != nil {
		info.Problem = err.Error()
		return info
	}
	info.Shapes = s.GetShapeCount()
	return info
}

// titleCase turns a file name like "two-cubes" into "Two Cubes"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
