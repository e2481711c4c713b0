//go:build !windows

package registry

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestSystemReader_NoRegistry(t *testing.T) {
	r := NewSystemReader()

	_, err := r.ReadString(Value{
		Root:   "HKEY_LOCAL_MACHINE",
		Subkey: `Software\Bethesda Softworks\Fallout4`,
		Name:   "Installed Path",
	})
	if !errors.Is(err, ErrValueNotFound) {
		t.Errorf("ReadString() error = %v, want ErrValueNotFound", err)
	}
}
