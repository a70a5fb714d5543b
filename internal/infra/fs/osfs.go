package fs

import (
	"io/fs"
	"os"
	"time"

	"github.com/djherbis/times"
)

type OSFS struct{}

func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// BirthTime reports the file creation time where the filesystem records one.
// The second return value is false when it does not.
func (OSFS) BirthTime(path string) (time.Time, bool, error) {
	spec, err := times.Stat(path)
	if err != nil {
		return time.Time{}, false, err
	}
	if !spec.HasBirthTime() {
		return time.Time{}, false, nil
	}
	return spec.BirthTime(), true, nil
}
