package img2ascii

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteText writes rows to w, each terminated by a newline.
func WriteText(w io.Writer, rows []string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveText writes rows to the file at path.
func SaveText(rows []string, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriterInit, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return WriteText(f, rows)
}
