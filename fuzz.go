package dwg

// Fuzz is the go-fuzz entry point: it exercises the full decode path
// against an arbitrary byte string, never panicking on malformed input.
func Fuzz(data []byte) int {
	f, err := NewBytes(data, &Options{})
	if err != nil {
		return 0
	}
	if err := f.Parse(); err != nil {
		return 0
	}
	return 1
}
