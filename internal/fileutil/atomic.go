package fileutil

import "os"

// AtomicWriteFile writes data to a sibling temp file and renames it into
// place. Readers never see a half-written file, which matters for ref
// files that other processes may resolve mid-download.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
