package test

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemFS is an in-memory clipdata.FileSystem. Paths are cleaned and slash-separated.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]struct{}
	// FailWrites makes WriteFile fail for these paths.
	FailWrites map[string]error
}

func NewMemFS() *MemFS {
	return &MemFS{
		files:      map[string][]byte{},
		dirs:       map[string]struct{}{".": {}, "/": {}},
		FailWrites: map[string]error{},
	}
}

func clean(name string) string {
	return path.Clean(filepath.ToSlash(name))
}

// Put stores a file and creates its parent directories.
func (m *MemFS) Put(name string, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = clean(name)
	m.mkdirAll(path.Dir(name))
	m.files[name] = []byte(data)
}

// Get returns a file's content and whether it exists.
func (m *MemFS) Get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[clean(name)]
	return string(b), ok
}

func (m *MemFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (m *MemFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = clean(name)
	if err, ok := m.FailWrites[name]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	if _, ok := m.dirs[path.Dir(name)]; !ok {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[name] = buf
	return nil
}

func (m *MemFS) MkdirAll(p string, _ fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirAll(clean(p))
	return nil
}

func (m *MemFS) mkdirAll(p string) {
	for {
		m.dirs[p] = struct{}{}
		parent := path.Dir(p)
		if parent == p {
			return
		}
		p = parent
	}
}

func (m *MemFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = clean(name)
	if b, ok := m.files[name]; ok {
		return memInfo{name: path.Base(name), size: int64(len(b))}, nil
	}
	if _, ok := m.dirs[name]; ok {
		return memInfo{name: path.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = clean(name)
	if _, ok := m.dirs[name]; !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	seen := map[string]memInfo{}
	for f, b := range m.files {
		if path.Dir(f) == name {
			seen[path.Base(f)] = memInfo{name: path.Base(f), size: int64(len(b))}
		}
	}
	for d := range m.dirs {
		if d != name && path.Dir(d) == name {
			seen[path.Base(d)] = memInfo{name: path.Base(d), dir: true}
		}
	}
	entries := make([]fs.DirEntry, 0, len(seen))
	for _, info := range seen {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Files lists every stored file path under prefix, sorted.
func (m *MemFS) Files(prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix = clean(prefix)
	var out []string
	for f := range m.files {
		if strings.HasPrefix(f, prefix+"/") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return i.size }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() interface{}   { return nil }
