package storage

import (
	"context"
	"os"
)

// DefaultExportFile is the file name a shopping list is saved under when none is configured.
const DefaultExportFile = "selected_ingredients.txt"

type FileTextSource struct {
	FilePath string
}

func NewFileTextSource(filePath string) *FileTextSource {
	return &FileTextSource{FilePath: filePath}
}

func (f *FileTextSource) Load(ctx context.Context) ([]byte, error) {
	return os.ReadFile(f.FilePath)
}

type FileListSink struct {
	FilePath string
}

func NewFileListSink(filePath string) *FileListSink {
	if filePath == "" {
		filePath = DefaultExportFile
	}
	return &FileListSink{FilePath: filePath}
}

// Save overwrites the export file with data.
func (f *FileListSink) Save(ctx context.Context, data []byte) error {
	return os.WriteFile(f.FilePath, data, 0644)
}
