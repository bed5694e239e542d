package measure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/aapc/format"
)

// RunFolder measures every regular file in dir with the given codec type.
//
// Files are processed in directory order. A failure on one file (read error
// or round-trip mismatch) is recorded and the remaining files still run; the
// accumulated failures come back as a single multierror alongside the results
// of the files that succeeded.
//
// If logger is nil the standard logrus logger is used.
func RunFolder(dir string, codecType format.CompressionType, logger *logrus.Logger) ([]Result, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", dir, err)
	}

	var (
		results []Result
		merr    *multierror.Error
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("read %s: %w", path, err))
			continue
		}

		logger.WithFields(logrus.Fields{
			"file":  entry.Name(),
			"size":  len(data),
			"codec": codecType.String(),
		}).Debug("measuring file")

		result, err := Run(entry.Name(), data, codecType)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		logger.WithFields(logrus.Fields{
			"file":  result.Name,
			"ratio": fmt.Sprintf("%.2f", result.Stats.CompressionRatio()),
		}).Debug("file verified")

		results = append(results, result)
	}

	return results, merr.ErrorOrNil()
}
