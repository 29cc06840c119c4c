package token

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a source file together with its line table. Positions refer back
// to it so diagnostics can show the offending line.
type File struct {
	Name  string // Base name, eg. foo/bar/main.sml -> main.sml
	Path  string // Path the file was read from, empty for in-memory sources
	Src   []byte
	Lines []int // Offset of the first character of each line
	Err   error // Read error, kept here so NewFile always returns a File
}

// NewFile creates a new source file. If src is nil the file is read from
// filename, otherwise src must be a string or []byte.
func NewFile(filename string, src any) *File {
	file := &File{
		Name: filepath.Base(filename),
	}

	switch src := src.(type) {
	case nil:
		file.Path = filename
		file.Src, file.Err = os.ReadFile(filename)
	case string:
		file.Src = []byte(src)
	case []byte:
		file.Src = src
	default:
		file.Err = fmt.Errorf("%s: unsupported source type %T", filename, src)
	}

	if file.Err != nil {
		file.Src = []byte{}
	}

	file.Lines = lineOffsets(file.Src)
	return file
}

// Line returns the source at the given row (line number -1), without the
// line ending. Returns an empty string for rows outside the file.
func (f *File) Line(row int) string {
	if row < 0 || row >= len(f.Lines) {
		return ""
	}

	line := f.Src[f.Lines[row]:]
	if end := bytes.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}

	return strings.TrimRight(string(line), "\r")
}

func lineOffsets(src []byte) []int {
	lines := []int{}
	for offset := 0; offset < len(src); {
		lines = append(lines, offset)

		end := bytes.IndexByte(src[offset:], '\n')
		if end < 0 {
			break
		}
		offset += end + 1
	}

	return lines
}
