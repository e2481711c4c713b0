package registry

// FakeReader is an in-memory Reader for tests and non-Windows development.
// The zero value is usable and contains no values.
type FakeReader struct {
	values map[Value]string
}

// NewFakeReader returns an empty FakeReader.
func NewFakeReader() *FakeReader {
	return &FakeReader{values: make(map[Value]string)}
}

// Set stores data for the given value, replacing any previous data.
func (r *FakeReader) Set(value Value, data string) {
	if r.values == nil {
		r.values = make(map[Value]string)
	}
	r.values[value] = data
}

// ReadString implements Reader.
func (r *FakeReader) ReadString(value Value) (string, error) {
	data, ok := r.values[value]
	if !ok {
		return "", ErrValueNotFound
	}
	return data, nil
}
