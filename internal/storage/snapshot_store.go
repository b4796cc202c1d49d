package storage

import (
	"os"

	json "github.com/goccy/go-json"
)

// SnapshotStore persists whole values as zstd-compressed JSON files.
// Writes go through a temp file and rename so a crash never leaves a
// half-written snapshot behind.
type SnapshotStore struct {
	compressor CompressorInterface
}

func NewSnapshotStore(compressor CompressorInterface) *SnapshotStore {
	return &SnapshotStore{compressor: compressor}
}

func (s *SnapshotStore) Save(fileName string, v any) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data, err := s.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// Load decodes the snapshot at fileName into out. A missing file is not an
// error: out is left untouched and (false, nil) is returned.
func (s *SnapshotStore) Load(fileName string, out any) (bool, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	decompressed, err := s.compressor.Decompress(data)
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(decompressed, out); err != nil {
		return false, err
	}
	return true, nil
}
