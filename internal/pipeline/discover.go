package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/namewright/internal/parser"
)

// File is one discovered media file.
type File struct {
	Path string
	Size int64
}

// prunedDirs are directory names (lowercase) whose contents are never
// discovered: release samples are not library episodes.
var prunedDirs = map[string]bool{
	"sample":  true,
	"samples": true,
}

// Discover walks root on fs, collects files with a video container
// extension, prunes sample directories and sample files, and returns them
// sorted lexicographically for deterministic processing order.
func Discover(fs afero.Fs, root string) ([]File, error) {
	var files []File
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && prunedDirs[strings.ToLower(info.Name())] {
				return filepath.SkipDir
			}
			return nil
		}
		if !parser.HasMediaExtension(info.Name()) || isSampleFile(info.Name()) {
			return nil
		}
		files = append(files, File{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// isSampleFile matches "sample.mkv" and scene samples like "show-sample.mkv".
func isSampleFile(name string) bool {
	stem := strings.ToLower(parser.StripExtension(name))
	return stem == "sample" || strings.HasSuffix(stem, "-sample") || strings.HasSuffix(stem, ".sample")
}
