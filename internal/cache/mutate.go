package cache

import "os"

// CleanIncomplete removes partially-downloaded blobs for a model and
// returns how many files were removed. Anything other than incomplete
// status is a no-op, not an error. Individual removal failures do not stop
// the remaining deletions; they are aggregated into a DeletionError.
func CleanIncomplete(root string, id Identifier) (int, error) {
	entry, err := Inspect(root, id)
	if err != nil {
		return 0, err
	}
	if entry.Status != StatusIncomplete {
		return 0, nil
	}

	removed := 0
	var failed []error
	for _, path := range entry.IncompleteFiles {
		if err := os.Remove(path); err != nil {
			failed = append(failed, err)
			continue
		}
		removed++
	}

	if len(failed) > 0 {
		return removed, &DeletionError{Errs: failed}
	}
	return removed, nil
}

// RemoveAll deletes a model's entire cache directory. Returns false when
// the model was never downloaded. There is no rollback: if deletion fails
// partway the directory is left as-is and the error reported.
func RemoveAll(root string, id Identifier) (bool, error) {
	entry, err := Inspect(root, id)
	if err != nil {
		return false, err
	}
	if entry.Status == StatusNotDownloaded {
		return false, nil
	}
	if err := os.RemoveAll(entry.Path); err != nil {
		return false, &DeletionError{Errs: []error{err}}
	}
	return true, nil
}
