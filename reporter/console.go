package reporter

import (
	"encoding/json"
	"io"
	"os"

	"github.com/malusev998/privat-rates"
)

const indent = "  "

// Console prints entries as an indented JSON array followed by a newline.
type Console struct {
	Out io.Writer
}

func (c Console) Report(entries []rates.ExtractedEntry) error {
	out := c.Out

	if out == nil {
		out = os.Stdout
	}

	if entries == nil {
		entries = []rates.ExtractedEntry{}
	}

	data, err := json.MarshalIndent(entries, "", indent)
	if err != nil {
		return err
	}

	_, err = out.Write(append(data, '\n'))

	return err
}
