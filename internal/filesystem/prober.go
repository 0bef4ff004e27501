package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/harrykwokdev/FluxFile/pkg/models"
)

// Owner permission bits within the 0o777 mask.
const (
	permOwnerRead  = 0o400
	permOwnerWrite = 0o200
	permOwnerExec  = 0o100
)

// StatPath resolves rich metadata for a single path. It fails fast if
// the path does not exist (a dangling symlink counts as missing, since
// classification follows the link); there are no partial results.
func StatPath(path string) (*models.FileMetadata, error) {
	// Status following the terminal symlink drives classification,
	// size, time and permissions.
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("path does not exist: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	// Status of the link itself drives only symlink detection, so a
	// link to a directory reports both is_symlink and directory type.
	linkInfo, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("lstat %s: %w", path, err)
	}

	fileType := classify(info.Mode())
	meta := &models.FileMetadata{
		Path:      path,
		Name:      filepath.Base(path),
		Extension: filepath.Ext(path),
		Parent:    filepath.Dir(path),

		Type:      fileType,
		TypeName:  fileType.String(),
		IsSymlink: linkInfo.Mode()&fs.ModeSymlink != 0,

		ModifiedAt: reconcileModTime(info.ModTime()),
	}

	if fileType == models.TypeRegular {
		meta.Size = info.Size()
	}

	perm := uint32(info.Mode().Perm())
	meta.Permissions = perm
	meta.Readable = perm&permOwnerRead != 0
	meta.Writable = perm&permOwnerWrite != 0
	meta.Executable = perm&permOwnerExec != 0

	return meta, nil
}

// classify maps a (symlink-followed) file mode onto the mutually
// exclusive type classification.
func classify(mode fs.FileMode) models.FileType {
	switch {
	case mode.IsRegular():
		return models.TypeRegular
	case mode.IsDir():
		return models.TypeDirectory
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice != 0:
		return models.TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return models.TypeBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return models.TypeFIFO
	case mode&fs.ModeSocket != 0:
		return models.TypeSocket
	default:
		return models.TypeUnknown
	}
}
