// Package backlog persists the backlog as a flat list of records,
// one {name, description, priority, size, maxTracks} object per item.
package backlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/TudorHulban/roadmap"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown backlog format")

// FormatFromPath picks the codec from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil

	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "",
		fmt.Errorf(
			"%w: %q",

			ErrUnknownFormat,
			path,
		)
}

// Record is the persisted shape of a work item.
type Record struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Priority    int    `json:"priority"    yaml:"priority"`
	Size        int    `json:"size"        yaml:"size"`
	MaxTracks   int    `json:"maxTracks"   yaml:"maxTracks"`
}

func NewRecord(item roadmap.WorkItem) Record {
	return Record{
		Name:        item.Name,
		Description: item.Description,
		Priority:    item.Priority,
		Size:        item.Size,
		MaxTracks:   item.MaxTracks,
	}
}

func (r Record) WorkItem() roadmap.WorkItem {
	return roadmap.WorkItem{
		Name:        r.Name,
		Description: r.Description,
		Priority:    r.Priority,
		Size:        r.Size,
		MaxTracks:   r.MaxTracks,
	}
}

// rawRecord accepts numbers or numeric strings, form inputs arrive as text.
type rawRecord struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Priority    any    `json:"priority"    yaml:"priority"`
	Size        any    `json:"size"        yaml:"size"`
	MaxTracks   any    `json:"maxTracks"   yaml:"maxTracks"`
}

func (raw *rawRecord) toWorkItem(index int) (roadmap.WorkItem, error) {
	result := roadmap.WorkItem{
		Name:        strings.TrimSpace(raw.Name),
		Description: raw.Description,
	}

	fields := []struct {
		value any
		out   *int
		name  string
	}{
		{name: "priority", value: raw.Priority, out: &result.Priority},
		{name: "size", value: raw.Size, out: &result.Size},
		{name: "maxTracks", value: raw.MaxTracks, out: &result.MaxTracks},
	}

	for _, field := range fields {
		number, errConvert := toInt(field.value)
		if errConvert != nil {
			return roadmap.WorkItem{},
				&roadmap.ItemError{
					Kind: roadmap.ErrInvalidItem,
					Issue: goerrors.ErrInvalidInput{
						Caller:     "Parse",
						InputName:  field.name,
						InputValue: field.value,
						Issue:      errConvert,
					},
					Name:  result.Name,
					Index: index,
				}
		}

		*field.out = number
	}

	return result,
		nil
}

func toInt(value any) (int, error) {
	switch typed := value.(type) {
	case nil:
		return 0,
			errors.New("missing value")

	case int:
		return typed, nil

	case int64:
		return int(typed), nil

	case uint64:
		if typed > math.MaxInt {
			return 0,
				fmt.Errorf("value %d out of range", typed)
		}

		return int(typed), nil

	case float64:
		if typed != math.Trunc(typed) || math.Abs(typed) > math.MaxInt32 {
			return 0,
				fmt.Errorf("value %v is not a whole number", typed)
		}

		return int(typed), nil

	case json.Number:
		if number, errParse := typed.Int64(); errParse == nil {
			return int(number), nil
		}

		number, errParse := typed.Float64()
		if errParse != nil {
			return 0,
				fmt.Errorf("value %q is not a whole number", typed.String())
		}

		return toInt(number)

	case string:
		number, errParse := strconv.Atoi(strings.TrimSpace(typed))
		if errParse != nil {
			return 0,
				fmt.Errorf("value %q is not numeric", typed)
		}

		return number, nil
	}

	return 0,
		fmt.Errorf("unsupported value type %T", value)
}

// Parse decodes a backlog document, an empty document is an empty backlog.
func Parse(data []byte, format Format) ([]roadmap.WorkItem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []roadmap.WorkItem{},
			nil
	}

	var raws []rawRecord

	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()

		if errDecode := decoder.Decode(&raws); errDecode != nil {
			return nil,
				fmt.Errorf("decode json backlog: %w", errDecode)
		}

	case FormatYAML:
		if errDecode := yaml.Unmarshal(data, &raws); errDecode != nil {
			return nil,
				fmt.Errorf("decode yaml backlog: %w", errDecode)
		}

	default:
		return nil,
			fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	result := make([]roadmap.WorkItem, len(raws))

	for ix := range raws {
		item, errConvert := raws[ix].toWorkItem(ix)
		if errConvert != nil {
			return nil,
				errConvert
		}

		result[ix] = item
	}

	return result,
		nil
}

func Encode(items []roadmap.WorkItem, format Format) ([]byte, error) {
	records := make([]Record, len(items))

	for ix, item := range items {
		records[ix] = NewRecord(item)
	}

	switch format {
	case FormatJSON:
		return json.MarshalIndent(records, "", "  ")

	case FormatYAML:
		return yaml.Marshal(records)
	}

	return nil,
		fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
