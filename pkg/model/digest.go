package model

// Verification is the outcome of comparing a digest with a reference.
type Verification string

const (
	VerificationSkipped  Verification = "skipped"
	VerificationMatch    Verification = "match"
	VerificationMismatch Verification = "mismatch"
)

// FileTarget is a resolved file and the size it had when hashing started.
type FileTarget struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// DigestResult is the outcome of hashing one file.
type DigestResult struct {
	Algorithm    Algorithm    `json:"algorithm"`
	Target       FileTarget   `json:"target"`
	Name         string       `json:"name"`
	BytesRead    int64        `json:"bytes_read"`
	ChunkSize    int          `json:"chunk_size"`
	Digest       string       `json:"digest"`
	Reference    string       `json:"reference,omitempty"`
	Verification Verification `json:"verification"`
}

// Matched reports whether a reference was supplied and equals the digest.
func (r *DigestResult) Matched() bool {
	return r.Verification == VerificationMatch
}
