package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// WorkingDirectory returns the process' current working directory.
func WorkingDirectory() (string, error) {
	result, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "unable to query working directory")
	}
	return result, nil
}
