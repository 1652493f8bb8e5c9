package filestore

import (
	"encoding/json"
	"os"
)

var openFileWriter = truncatingFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

func requireSaveDir(dir string) error {
	return os.MkdirAll(dir, 0775)
}

func truncatingFileWriter(file string) (writer, error) {
	return os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
}

func writeRecord(w writer, rec record) error {
	j, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}
