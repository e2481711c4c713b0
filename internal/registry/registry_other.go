//go:build !windows

package registry

// SystemReader is a stub on platforms without a Windows registry.
// Every read reports the value as absent.
type SystemReader struct{}

// NewSystemReader returns a Reader that never finds a value.
func NewSystemReader() SystemReader {
	return SystemReader{}
}

// ReadString implements Reader.
func (SystemReader) ReadString(Value) (string, error) {
	return "", ErrValueNotFound
}
