package clipdata

import (
	"context"
	"path/filepath"
	"strings"
)

// FlagDownloader materializes flag SVGs into Dir through a Fetcher and a FileSystem.
type FlagDownloader struct {
	Fetcher Fetcher
	FS      FileSystem
	Dir     string
}

// FlagFilename is the local file name for a country's flag.
func FlagFilename(code string) string {
	return strings.ToLower(code) + ".svg"
}

// Materialize downloads url into <lower(code)>.svg. Only URLs ending in ".svg" are eligible;
// others yield "" and no error. Existing files are always overwritten.
func (d *FlagDownloader) Materialize(ctx context.Context, url string, code string) (string, error) {
	if url == "" || !strings.HasSuffix(url, ".svg") {
		return "", nil
	}
	filename := FlagFilename(code)
	body, err := d.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", newPipelineError(KindItem, code, "download flag "+url, err)
	}
	if err := d.FS.WriteFile(filepath.Join(d.Dir, filename), body, 0o644); err != nil {
		return "", newPipelineError(KindItem, code, "write flag "+filename, err)
	}
	return filename, nil
}

// ListAssets returns the names of the *.svg files directly inside dir. A missing dir yields none.
func ListAssets(fsys FileSystem, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".svg") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
