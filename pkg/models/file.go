package models

// FileRecord is one entry collected during a directory scan.
// Records are immutable once constructed and owned by the slice
// returned from a single scan.
type FileRecord struct {
	Path        string `json:"path"`         // absolute path
	Name        string `json:"name"`         // final path component
	Size        int64  `json:"size"`         // bytes; 0 for directories and symlinks
	ModifiedAt  int64  `json:"mtime"`        // reconciled, seconds since epoch
	IsDirectory bool   `json:"is_directory"` // for symlinks: type of the target
	IsSymlink   bool   `json:"is_symlink"`
}

// FileType classifies a path. A symlink is reported separately via
// FileMetadata.IsSymlink; the type fields describe the resolved target.
type FileType int

const (
	TypeUnknown FileType = iota
	TypeRegular
	TypeDirectory
	TypeBlockDevice
	TypeCharDevice
	TypeFIFO
	TypeSocket
)

// String returns the type name used in reports and CLI output.
func (t FileType) String() string {
	switch t {
	case TypeRegular:
		return "regular"
	case TypeDirectory:
		return "directory"
	case TypeBlockDevice:
		return "block"
	case TypeCharDevice:
		return "char"
	case TypeFIFO:
		return "fifo"
	case TypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// FileMetadata is a rich single-path snapshot returned by the prober.
type FileMetadata struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Extension string `json:"extension"` // includes the leading dot, "" if none
	Parent    string `json:"parent"`

	Type      FileType `json:"-"`
	TypeName  string   `json:"type"`
	IsSymlink bool     `json:"is_symlink"`

	Size       int64 `json:"size"`  // bytes; 0 unless a regular file
	ModifiedAt int64 `json:"mtime"` // reconciled, seconds since epoch

	Permissions uint32 `json:"permissions"` // raw 0o777 bits
	Readable    bool   `json:"is_readable"` // owner read
	Writable    bool   `json:"is_writable"` // owner write
	Executable  bool   `json:"is_executable"`
}

// PermString renders the permission bits as "rwxr-xr-x".
func (m *FileMetadata) PermString() string {
	const chars = "rwxrwxrwx"
	buf := make([]byte, 9)
	for i := 0; i < 9; i++ {
		if m.Permissions&(1<<uint(8-i)) != 0 {
			buf[i] = chars[i]
		} else {
			buf[i] = '-'
		}
	}
	return string(buf)
}

// DirectoryEntry is one row of a single-level directory listing.
type DirectoryEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"` // sandbox-relative when listed through the service
	Size        int64  `json:"size"`
	ModifiedAt  int64  `json:"mtime"`
	IsDirectory bool   `json:"is_directory"`
	IsSymlink   bool   `json:"is_symlink"`
}

// DirectoryListing is the result of listing one directory level.
type DirectoryListing struct {
	Path    string           `json:"path"`
	Parent  string           `json:"parent,omitempty"`
	Entries []DirectoryEntry `json:"files"`
	Total   int              `json:"total"`
}
