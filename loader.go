package cashlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadLedger opens, decodes, and returns the ledger stored at path.
// A missing file is the first-run case and yields an empty ledger, not an
// error. Any other failure, including a malformed file, aborts the load.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger to path, overwriting any existing file.
// I/O errors are surfaced to the caller.
func SaveLedger(path string, ledger *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}

	if err := EncodeLedger(f, ledger); err != nil {
		f.Close()
		return fmt.Errorf("error writing ledger file %q: %w", path, err)
	}
	// Close errors matter here: they are the last chance to see a full disk.
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", path, err)
	}
	return nil
}
