//go:build windows

package registry

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows/registry"
)

// SystemReader reads values from the live Windows registry.
type SystemReader struct{}

// NewSystemReader returns a Reader backed by the Windows registry.
func NewSystemReader() SystemReader {
	return SystemReader{}
}

// ReadString implements Reader.
func (SystemReader) ReadString(value Value) (string, error) {
	root, err := rootKey(value.Root)
	if err != nil {
		return "", err
	}

	key, err := registry.OpenKey(root, value.Subkey, registry.QUERY_VALUE|registry.WOW64_32KEY)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", errors.Wrapf(ErrValueNotFound, "opening key %q", value.Subkey)
		}
		return "", errors.Wrapf(err, "opening key %q", value.Subkey)
	}
	defer key.Close()

	data, _, err := key.GetStringValue(value.Name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", errors.Wrapf(ErrValueNotFound, "reading value %q", value.Name)
		}
		return "", errors.Wrapf(err, "reading value %q", value.Name)
	}

	return data, nil
}

func rootKey(name string) (registry.Key, error) {
	switch name {
	case "HKEY_LOCAL_MACHINE":
		return registry.LOCAL_MACHINE, nil
	case "HKEY_CURRENT_USER":
		return registry.CURRENT_USER, nil
	case "HKEY_CLASSES_ROOT":
		return registry.CLASSES_ROOT, nil
	case "HKEY_USERS":
		return registry.USERS, nil
	default:
		return 0, errors.Newf("unsupported registry root %q", name)
	}
}
