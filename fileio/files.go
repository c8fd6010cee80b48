// SPDX-License-Identifier: MIT

package fileio

import (
	"fmt"
	"os"

	"github.com/katalvlaran/borderband/matrix"
)

// LoadBand reads a matrix file from path.
func LoadBand(path string, opts ...matrix.Option) (*matrix.BorderedBand, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadBand: %w", err)
	}
	defer fh.Close()

	m, err := ReadBand(fh, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// LoadVector reads a vector file from path.
func LoadVector(path string) (*matrix.Vector, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadVector: %w", err)
	}
	defer fh.Close()

	v, err := ReadVector(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// SaveBand writes m to path, replacing any existing file.
func SaveBand(path string, m *matrix.BorderedBand) error {
	return save(path, func(fh *os.File) error { return WriteBand(fh, m) })
}

// SaveVector writes v to path, replacing any existing file.
func SaveVector(path string, v *matrix.Vector) error {
	return save(path, func(fh *os.File) error { return WriteVector(fh, v) })
}

func save(path string, write func(*os.File) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(fh); err != nil {
		fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}
