package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

//InSlice returns true if given string appears in given slice
func InSlice(lookingFor string, slice []string) bool {
	return lo.Contains(slice, lookingFor)
}

//ListDir returns a list of files/ directories in given path
func ListDir(path string) ([]string, error) {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("ListDir: Error, got '%v'", err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}

	return names, nil
}

//BaseName returns a file name without its directory and extension, "games/final.mp4" -> "final"
func BaseName(fileName string) string {
	name := filepath.Base(fileName)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

//BaseNameTaken returns true if one of existing file names shares fileName's BaseName, "final.avi" takes "final.mp4"
func BaseNameTaken(fileName string, existing []string) bool {
	base := BaseName(fileName)
	return lo.ContainsBy(existing, func(name string) bool { return BaseName(name) == base })
}

//IsVideo returns true if the file name has one of VideoExtensions (case insensitive)
func IsVideo(fileName string) bool {
	return InSlice(strings.ToLower(filepath.Ext(fileName)), VideoExtensions)
}

//EnsureDir creates the directory (and parents) if it does not exist
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0766); err != nil {
		return fmt.Errorf("EnsureDir: Error creating '%s', got '%v'", path, err)
	}
	return nil
}
