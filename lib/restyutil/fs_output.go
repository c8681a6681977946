package restyutil

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName turns a page url into a name that is safe to use as a file name, the
// sequence number keeps repeated fetches of the same url apart.
func FileName(seq int, pageUrl string) string {
	name := pageUrl
	parsed, err := url.Parse(pageUrl)
	if err == nil {
		name = parsed.Host + parsed.Path
		if parsed.RawQuery != "" {
			name += "_" + parsed.RawQuery
		}
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if len(name) > 120 {
		name = name[:120]
	}
	return fmt.Sprintf("%04d_%s.txt", seq, name)
}

// FilesystemOutput implements MessageOutput by writing one file per exchange into a
// directory, it is used to capture the pages a run saw when a pattern stops matching.
type FilesystemOutput struct {
	directory string
	mutex     *sync.Mutex
	seq       *int
}

func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	err := os.RemoveAll(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return FilesystemOutput{}, err
	}
	seq := 0
	return FilesystemOutput{
		directory: dir,
		mutex:     &sync.Mutex{},
		seq:       &seq,
	}, nil
}

func (o FilesystemOutput) Write(pageUrl string, contents string) {
	o.mutex.Lock()
	*o.seq++
	name := FileName(*o.seq, pageUrl)
	o.mutex.Unlock()

	err := os.WriteFile(filepath.Join(o.directory, name), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write message info file", "url", pageUrl, "err", err)
	}
}
