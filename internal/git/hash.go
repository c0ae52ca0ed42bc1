package git

// Hash is the SHA of a Git object.
type Hash string

// ZeroHash is the hash of an empty object.
const ZeroHash Hash = "0000000000000000000000000000000000000000"

func (h Hash) String() string { return string(h) }

// Short returns the abbreviated form of the hash.
func (h Hash) Short() string {
	if len(h) <= 7 {
		return string(h)
	}
	return string(h[:7])
}

// IsZero reports whether the hash is empty or all zeros.
func (h Hash) IsZero() bool {
	return h == "" || h == ZeroHash
}
