package buffer

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

const (
	anyRead  fs.FileMode = 0o444
	anyWrite fs.FileMode = 0o222
)

// Load reads the file at path and splits its content into lines. It also
// returns the number of bytes read. A trailing newline does not produce an
// extra empty line.
//
// Load fails with a PermissionDenied error without reading anything if none
// of the owner, group and other read permission bits of the file are set.
func Load(path string) ([]string, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fileError(NotFound, path, err)
		}
		return nil, 0, fileError(StatError, path, err)
	}
	if info.Mode().Perm()&anyRead == 0 {
		return nil, 0, fileError(PermissionDenied, path,
			&fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission})
	}
	if info.IsDir() {
		return nil, 0, fileError(OpenError, path,
			&fs.PathError{Op: "open", Path: path, Err: errIsDir})
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fileError(openErrorKind(err), path, err)
	}
	defer file.Close()
	lines, size, err := ReadLines(file)
	if err != nil {
		return nil, 0, fileError(OpenError, path, err)
	}
	return lines, size, nil
}

var errIsDir = errors.New("is a directory")

// ReadLines reads r to the end and splits its content into lines, the same way
// Load does. It also returns the number of bytes read.
func ReadLines(r io.Reader) ([]string, int64, error) {
	var lines []string
	var size int64
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		size += int64(len(line))
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return lines, size, nil
		} else if err != nil {
			return nil, 0, err
		}
	}
}

// WriteFile writes all lines to the file at path, each followed by a newline,
// truncating the file first. It returns the size of the file after writing.
//
// If the file exists but cannot be written, WriteFile fails with a
// PermissionDenied error before the file is opened, so the file is never
// truncated.
func (b *Buffer) WriteFile(path string) (int64, error) {
	if path == "" {
		return 0, ErrNoFilename
	}
	if info, err := os.Stat(path); err == nil {
		if info.Mode().Perm()&anyWrite == 0 || !writable(path) {
			return 0, fileError(PermissionDenied, path,
				&fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission})
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return 0, fileError(openErrorKind(err), path, err)
	}
	bw := bufio.NewWriter(file)
	for _, line := range b.lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	err = bw.Flush()
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fileError(WriteError, path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fileError(StatError, path, err)
	}
	return info.Size(), nil
}

func openErrorKind(err error) Kind {
	if errors.Is(err, fs.ErrPermission) {
		return PermissionDenied
	}
	return OpenError
}
