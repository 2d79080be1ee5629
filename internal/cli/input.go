package cli

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/solver"
)

// inputFile is a problem file read from disk together with the algorithm
// it is meant for.
type inputFile struct {
	Path      string
	Name      string
	Algorithm solver.Algorithm
	Data      []byte
}

// readInput validates and loads path for algorithm.
func readInput(algorithm, path string) (*inputFile, error) {
	algo, err := solver.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	if err := errors.ValidateUploadFilename(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	if err := errors.ValidateInput(data); err != nil {
		return nil, err
	}
	return &inputFile{Path: path, Name: name, Algorithm: algo, Data: data}, nil
}

func (f *inputFile) Text() string { return string(f.Data) }
