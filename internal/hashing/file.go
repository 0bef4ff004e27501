package hashing

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultChunkSize is the read buffer size used when none is given.
// 1 MiB amortizes syscall overhead against peak memory per call.
const DefaultChunkSize = 1024 * 1024

// ErrNotRegularFile is returned when the path exists but does not
// name a regular file.
var ErrNotRegularFile = errors.New("not a regular file")

// HashFile computes the BLAKE3 digest of the file at path, streaming
// its content in chunkSize reads, and returns the lowercase hex
// encoding. chunkSize <= 0 selects DefaultChunkSize. The digest is
// identical for any chunk size.
func HashFile(path string, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file does not exist: %s: %w", path, fs.ErrNotExist)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open file %s: %w", path, err)
	}
	defer f.Close()

	engine := NewEngine()
	buf := make([]byte, chunkSize)
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			engine.Update(buf[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", fmt.Errorf("error reading file %s: %w", path, readErr)
		}
	}

	return hex.EncodeToString(engine.Finalize(OutputSize)), nil
}
