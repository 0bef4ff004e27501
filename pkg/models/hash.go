package models

// HashResult is the outcome of hashing one path: exactly one of
// Digest or Err is populated.
type HashResult struct {
	Path   string `json:"path"`
	Digest string `json:"hash,omitempty"`  // lowercase hex, 2 chars per output byte
	Err    string `json:"error,omitempty"` // error description on failure
}

// OK reports whether the hash succeeded.
func (r HashResult) OK() bool {
	return r.Err == ""
}
