package emit

import "os"

// WriteFile emits the integration artifact to the given path, creating or
// truncating it.  An empty path disables artifact emission; the boolean
// result reports whether a file was actually written.
func (t *Table) WriteFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	if err := t.Emit(file); err != nil {
		return false, err
	}

	return true, nil
}
