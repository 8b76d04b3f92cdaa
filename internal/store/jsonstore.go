package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// JSONStore archives raw upstream payloads under a root directory, one file
// per endpoint snapshot (e.g. "bootstrap/bootstrap-static.json").
type JSONStore struct {
	Root   string
	Pretty bool
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root, Pretty: true}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *JSONStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

func (s *JSONStore) Write(rel string, body []byte) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if s.Pretty {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(v)
			body = buf.Bytes()
		}
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *JSONStore) Read(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}
