package docstore

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

const (
	schemaVersion = 1
	idPrefix      = "tsk_"
	dueLayout     = "2006-01-02"
	fileExt       = ".md"
)

var timeNow = func() time.Time { return time.Now().UTC() }

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(randReader{}, 0)
)

// taskMeta is the YAML frontmatter of a task file.
type taskMeta struct {
	Schema    int        `yaml:"schema"`
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Status    string     `yaml:"status"`
	Priority  string     `yaml:"priority"`
	Due       string     `yaml:"due,omitempty"`
	CreatedAt *time.Time `yaml:"created_at"`
	UpdatedAt *time.Time `yaml:"updated_at"`
}

// taskFile is one markdown document: frontmatter plus a free-form body
// holding the description.
type taskFile struct {
	meta taskMeta
	body string
	path string
}

func newID() string {
	entropyMu.Lock()
	id, err := ulid.New(ulid.Timestamp(timeNow()), entropy)
	entropyMu.Unlock()
	if err != nil {
		return fmt.Sprintf("%s%d", idPrefix, timeNow().UnixNano())
	}
	return idPrefix + strings.ToUpper(id.String())
}

func writeTaskFile(f *taskFile) error {
	yamlBytes, err := yaml.Marshal(&f.meta)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	if body := strings.TrimSpace(f.body); body != "" {
		buf.WriteString(body)
		buf.WriteString("\n")
	}
	return atomicWriteFile(f.path, buf.Bytes(), 0o644)
}

func readTaskFile(path string) (*taskFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	meta, body, err := parseFrontmatter(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &taskFile{meta: *meta, body: body, path: path}, nil
}

func parseFrontmatter(b []byte) (*taskMeta, string, error) {
	s := strings.ReplaceAll(string(b), "\r\n", "\n")
	if !strings.HasPrefix(s, "---\n") {
		return nil, "", ErrInvalidFile
	}
	parts := strings.SplitN(s, "\n---\n", 2)
	if len(parts) != 2 {
		return nil, "", ErrInvalidFile
	}
	var meta taskMeta
	if err := yaml.Unmarshal([]byte(strings.TrimPrefix(parts[0], "---\n")), &meta); err != nil {
		return nil, "", err
	}
	if meta.Schema == 0 {
		meta.Schema = schemaVersion
	}
	return &meta, strings.TrimSpace(parts[1]), nil
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp-%d", timeNow().UnixNano()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > 48 {
		out = strings.Trim(out[:48], "-")
	}
	if out == "" {
		return "task"
	}
	return out
}
