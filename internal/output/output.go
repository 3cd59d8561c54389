package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Writer receives everything the program prints as its answer. Tests
// swap it for a buffer. Diagnostics never go here; they belong on
// stderr.
var Writer io.Writer = os.Stdout

// Line prints a bare line, such as the PNR of a successful booking.
func Line(s string) error {
	_, err := fmt.Fprintln(Writer, s)
	return err
}

// JSON pretty-prints v for subcommands that answer with a document.
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(Writer, string(data))
	return err
}
