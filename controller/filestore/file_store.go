package filestore

import (
	"context"
	"os"
	"os/user"
	"path"
	"sync"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultFile is the file name used when no path is given.
const DefaultFile = "highscore.json"

func defaultPath() string {
	return path.Join(homeDir(), ".holosnake", DefaultFile)
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a store that keeps the high score in a single JSON
// file.
func NewFileStore(file string) controller.Store {
	if file == "" {
		file = defaultPath()
	}
	return &fileStore{file: file}
}

type fileStore struct {
	file string
	lock sync.Mutex
}

func (fs *fileStore) GetHighScore(ctx context.Context) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	r, err := openFileReader(fs.file)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, controller.ErrNotFound
		}
		return 0, errors.Wrapf(err, "unable to open %s", fs.file)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			log.WithError(cerr).Error("Error while closing file reader")
		}
	}()

	rec, err := readRecord(r)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to read %s", fs.file)
	}
	return rec.HighScore, nil
}

func (fs *fileStore) PutHighScore(ctx context.Context, score int) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if err := requireSaveDir(path.Dir(fs.file)); err != nil {
		return errors.Wrap(err, "unable to create save directory")
	}
	w, err := openFileWriter(fs.file)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", fs.file)
	}
	if err := writeRecord(w, record{HighScore: score}); err != nil {
		w.Close()
		return errors.Wrapf(err, "unable to write %s", fs.file)
	}
	return errors.Wrap(w.Close(), "unable to close high score file")
}
