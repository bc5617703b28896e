package piecetable

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dimchansky/utfbom"
)

// FromReader reads r to EOF and creates a table from its contents.
func FromReader(r io.Reader) (*PieceTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}
	if err := checkEncoding(data); err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// FromFile reads the whole file at path and creates a table from it.
// I/O errors are wrapped, so errors.Is(err, fs.ErrNotExist) still holds.
func FromFile(path string) (*PieceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := checkEncoding(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return FromBytes(data)
}

// checkEncoding rejects text carrying a UTF-16 or UTF-32 byte order mark.
// A UTF-8 mark is accepted and kept as part of the document.
func checkEncoding(data []byte) error {
	_, enc := utfbom.Skip(bytes.NewReader(data))
	switch enc {
	case utfbom.UTF16BigEndian, utfbom.UTF16LittleEndian,
		utfbom.UTF32BigEndian, utfbom.UTF32LittleEndian:
		return fmt.Errorf("%w: text is %s encoded", ErrInvalidUTF8, enc)
	}
	return nil
}
