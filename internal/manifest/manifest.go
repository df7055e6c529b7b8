// Пакет manifest — поиск ближайшего файла-манифеста вверх по дереву директорий
// и чтение из него поля привязки логгера.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound — манифест не найден до корня файловой системы.
	ErrNotFound = errors.New("no manifest found")
	// ErrInvalid — манифест найден, но не разбирается.
	ErrInvalid = errors.New("invalid manifest")
)

// Manifest — разобранное содержимое файла.
type Manifest struct {
	Path   string
	Fields map[string]any
}

// Find — идёт от startDir вверх; в каждой директории пробует names по порядку.
// Файл, который не удалось прочитать или разобрать, считается отсутствующим;
// такие файлы перечисляются в ошибке ErrNotFound.
// Корень файловой системы не просматривается.
func Find(startDir string, names []string) (*Manifest, error) {
	var skipped error
	dir := filepath.Clean(startDir)
	for !isTerminal(dir) {
		for _, name := range names {
			if name == "" {
				continue
			}
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			m, err := Load(path)
			if err != nil {
				skipped = multierr.Append(skipped, err)
				continue
			}
			return m, nil
		}
		dir = filepath.Dir(dir)
	}

	if skipped != nil {
		return nil, fmt.Errorf("%w (searched from %s for %s; skipped %w)", ErrNotFound, startDir, strings.Join(names, ", "), skipped)
	}
	return nil, fmt.Errorf("%w (searched from %s for %s)", ErrNotFound, startDir, strings.Join(names, ", "))
}

// isTerminal — пустой/относительный "." путь или корень.
func isTerminal(dir string) bool {
	if dir == "" || dir == "." {
		return true
	}
	return filepath.Dir(dir) == dir
}

// Load — читает и разбирает файл; формат выбирается по расширению (.json → JSON, иначе YAML).
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	fields, err := parse(path, raw)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalid, path, err)
	}
	return &Manifest{Path: path, Fields: fields}, nil
}

func parse(path string, raw []byte) (map[string]any, error) {
	fields := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
	default:
		// YAML — надмножество JSON, поэтому годится и для файлов без расширения.
		if err := yaml.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
	}
	if fields == nil {
		// пустой YAML-документ
		fields = map[string]any{}
	}
	return fields, nil
}

// Binding — значение поля field: строка или объект со строковым свойством binding.
func (m *Manifest) Binding(field string) (string, bool) {
	if m == nil {
		return "", false
	}
	switch v := m.Fields[field].(type) {
	case string:
		v = strings.TrimSpace(v)
		return v, v != ""
	case map[string]any:
		if s, ok := v["binding"].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), true
		}
	}
	return "", false
}
