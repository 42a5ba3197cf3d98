package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteDatFile renders the words table as the tab-separated flat file the
// Android client consumes: one line per word, fixed field order, no header,
// missing values as empty strings.
func WriteDatFile(store *Store, w io.Writer) error {
	words, err := store.Words()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, word := range words {
		fields := []string{
			word.Gloss,
			word.Minor,
			word.Maori,
			word.Picture,
			word.Video,
			word.Handshape,
			word.Location,
		}
		if _, err := fmt.Fprintln(bw, strings.Join(fields, "\t")); err != nil {
			return fmt.Errorf("failed to write dat file: %w", err)
		}
	}
	return bw.Flush()
}

// WriteDatFileTo writes the flat file to path, replacing any existing file.
func WriteDatFileTo(store *Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dat file: %w", err)
	}
	defer f.Close()

	if err := WriteDatFile(store, f); err != nil {
		return err
	}
	return f.Close()
}
