package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatHTML  Format = "html"
)

var ErrUnknownFormat = errors.New("unknown output format")

func Formats() []Format {
	return []Format{
		FormatTable,
		FormatJSON,
		FormatYAML,
		FormatHTML,
	}
}

func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(value)))

	if slices.Contains(Formats(), format) {
		return format, nil
	}

	return "",
		fmt.Errorf(
			"%w: %q",

			ErrUnknownFormat,
			value,
		)
}

func Render(w io.Writer, format Format, doc *Document) error {
	switch format {
	case FormatTable:
		_, errWrite := io.WriteString(w, Table(doc)+"\n")

		return errWrite

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(doc)

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if errEncode := encoder.Encode(doc); errEncode != nil {
			return errEncode
		}

		return encoder.Close()

	case FormatHTML:
		return HTML(w, doc)
	}

	return fmt.Errorf(
		"%w: %q",

		ErrUnknownFormat,
		format,
	)
}
