package tracks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//ReadStub loads precomputed per-frame data from a JSON stub file into v.
//It returns false (and no error) when the stub does not exist yet.
func ReadStub(path string, v interface{}) (bool, error) {
	if path == "" {
		return false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("ReadStub: Error reading '%s', got '%v'", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("ReadStub: Error decoding '%s', got '%v'", path, err)
	}

	return true, nil
}

//SaveStub writes v as JSON to path. The file is written next to its destination first and then renamed,
//so a crashed run never leaves a half written stub behind.
func SaveStub(path string, v interface{}) error {
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0766); err != nil {
		return fmt.Errorf("SaveStub: Error creating directory for '%s', got '%v'", path, err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("SaveStub: Error encoding '%s', got '%v'", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("SaveStub: Error creating temp file, got '%v'", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("SaveStub: Error writing '%s', got '%v'", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("SaveStub: Error closing '%s', got '%v'", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("SaveStub: Error renaming stub to '%s', got '%v'", path, err)
	}

	return nil
}
