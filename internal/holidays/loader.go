package holidays

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// maxAge is how long a cached holiday file is trusted.
const maxAge = 6 * 30 * 24 * time.Hour

// LoadFile reads a holiday JSON file into a Table.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read holidays file")
	}
	return Parse(data)
}

// Parse decodes holiday JSON.
func Parse(data []byte) (Table, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse holidays JSON")
	}
	table := make(Table, len(file))
	for _, year := range file {
		table[year.Year] = year.Holiday
	}
	return table, nil
}

// CachePath returns the default holiday file location in the user cache dir.
func CachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(err, "locate cache directory")
	}
	return filepath.Join(dir, "rangecal", "holidays.json"), nil
}

// IsFresh reports whether the file at path exists and was modified within
// the last six months of now.
func IsFresh(path string, now time.Time) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "stat holidays file")
	}
	return now.Sub(info.ModTime()) < maxAge, nil
}
