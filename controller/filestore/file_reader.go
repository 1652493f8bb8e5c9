package filestore

import (
	"encoding/json"
	"io"
	"os"
)

var openFileReader = fileReader

type reader interface {
	io.Reader
	Close() error
}

// record is the on-disk format, {"highScore": N}.
type record struct {
	HighScore int `json:"highScore"`
}

func fileReader(file string) (reader, error) {
	return os.Open(file)
}

func readRecord(r io.Reader) (record, error) {
	var rec record
	err := json.NewDecoder(r).Decode(&rec)
	return rec, err
}
