package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/draft"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/fileutil"
)

// defaultOutputDirName is created inside the input directory when no output
// directory is configured.
const defaultOutputDirName = "formatted"

// DraftFile is a single draft to format and the directory its artifacts go to.
type DraftFile struct {
	InputPath string
	OutputDir string
}

// discoverDrafts finds every draft under inputPath. Hidden entries and the
// output directory itself are skipped, so formatted artifacts are never
// picked up as drafts on a later run.
func discoverDrafts(inputPath, outputDir string) ([]DraftFile, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !draft.IsDraftFile(inputPath) {
			return nil, fmt.Errorf("%w: %q", draft.ErrUnsupportedFormat, filepath.Ext(inputPath))
		}
		return []DraftFile{{InputPath: inputPath, OutputDir: outputDir}}, nil
	}

	absOutput, _ := filepath.Abs(outputDir)

	var files []DraftFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path == inputPath {
				return nil
			}
			if isHiddenName(d.Name()) || sameDir(path, absOutput) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHiddenName(d.Name()) || !draft.IsDraftFile(path) {
			return nil
		}
		files = append(files, DraftFile{InputPath: path, OutputDir: resolveOutputDir(path, outputDir, inputPath)})
		return nil
	})

	return files, err
}

// resolveOutputDir mirrors the draft's location below baseInputDir into outputDir.
func resolveOutputDir(inputPath, outputDir, baseInputDir string) string {
	if baseInputDir == "" {
		return outputDir
	}
	relPath, err := filepath.Rel(baseInputDir, inputPath)
	if err != nil {
		return outputDir
	}
	return filepath.Join(outputDir, filepath.Dir(relPath))
}

// defaultOutputDir returns the "formatted" directory next to a draft file,
// or inside a draft directory.
func defaultOutputDir(inputPath string) string {
	dir := inputPath
	if fileutil.FileExists(inputPath) {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, defaultOutputDirName)
}

func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// sameDir compares path against an absolute directory.
func sameDir(path, absDir string) bool {
	if absDir == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	return err == nil && abs == absDir
}
