package sysutil

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ResourceBytes reads dir/name from fsys, typically an embed.FS.
func ResourceBytes(fsys fs.FS, dir, name string) ([]byte, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	p := path.Join(dir, name)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, p)
		}
		return nil, errors.Join(ErrResourceRead, err)
	}
	return data, nil
}
