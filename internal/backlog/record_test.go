package backlog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TudorHulban/roadmap"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		format   Format
		expected []roadmap.WorkItem
	}{
		{
			name:     "1. empty document",
			data:     "  \n",
			format:   FormatJSON,
			expected: []roadmap.WorkItem{},
		},
		{
			name: "2. json numbers",
			data: `[
				{"name": "A", "description": "first", "priority": 1, "size": 3, "maxTracks": 1},
				{"name": "B", "description": "second", "priority": 2, "size": 2, "maxTracks": 2}
			]`,
			format: FormatJSON,
			expected: []roadmap.WorkItem{
				{Name: "A", Description: "first", Priority: 1, Size: 3, MaxTracks: 1},
				{Name: "B", Description: "second", Priority: 2, Size: 2, MaxTracks: 2},
			},
		},
		{
			name:   "3. json numeric strings from form inputs",
			data:   `[{"name": "A", "description": "", "priority": "1", "size": " 3", "maxTracks": "2"}]`,
			format: FormatJSON,
			expected: []roadmap.WorkItem{
				{Name: "A", Priority: 1, Size: 3, MaxTracks: 2},
			},
		},
		{
			name: "4. yaml",
			data: `
- name: checkout
  description: new checkout flow
  priority: 1
  size: 6
  maxTracks: 3
- name: search
  priority: "2"
  size: 4
  maxTracks: 1
`,
			format: FormatYAML,
			expected: []roadmap.WorkItem{
				{Name: "checkout", Description: "new checkout flow", Priority: 1, Size: 6, MaxTracks: 3},
				{Name: "search", Priority: 2, Size: 4, MaxTracks: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				items, errParse := Parse([]byte(tt.data), tt.format)
				require.NoError(t, errParse)
				require.Equal(t, tt.expected, items)
			},
		)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run(
		"1. non numeric priority",
		func(t *testing.T) {
			items, errParse := Parse(
				[]byte(`[
					{"name": "A", "priority": 1, "size": 1, "maxTracks": 1},
					{"name": "B", "priority": "high", "size": 1, "maxTracks": 1}
				]`),
				FormatJSON,
			)
			require.ErrorIs(t, errParse, roadmap.ErrInvalidItem)
			require.Nil(t, items)

			var errItem *roadmap.ItemError
			require.ErrorAs(t, errParse, &errItem)
			require.Equal(t, 1, errItem.Index)
			require.Equal(t, "B", errItem.Name)
		},
	)

	t.Run(
		"2. fractional size",
		func(t *testing.T) {
			_, errParse := Parse(
				[]byte("- name: A\n  priority: 1\n  size: 1.5\n  maxTracks: 1\n"),
				FormatYAML,
			)
			require.ErrorIs(t, errParse, roadmap.ErrInvalidItem)
		},
	)

	t.Run(
		"3. missing max tracks",
		func(t *testing.T) {
			_, errParse := Parse(
				[]byte(`[{"name": "A", "priority": 1, "size": 1}]`),
				FormatJSON,
			)
			require.ErrorIs(t, errParse, roadmap.ErrInvalidItem)
		},
	)

	t.Run(
		"4. malformed document",
		func(t *testing.T) {
			_, errParse := Parse([]byte(`{"name":`), FormatJSON)
			require.Error(t, errParse)
			require.NotErrorIs(t, errParse, roadmap.ErrInvalidItem)
		},
	)

	t.Run(
		"5. unknown format",
		func(t *testing.T) {
			_, errParse := Parse([]byte(`[]`), Format("toml"))
			require.ErrorIs(t, errParse, ErrUnknownFormat)
		},
	)
}

func TestEncodeUsesRecordShape(t *testing.T) {
	items := []roadmap.WorkItem{
		{Name: "A", Description: "first", Priority: 1, Size: 3, MaxTracks: 1},
	}

	encoded, errEncode := Encode(items, FormatJSON)
	require.NoError(t, errEncode)
	require.JSONEq(t,
		`[{"name": "A", "description": "first", "priority": 1, "size": 3, "maxTracks": 1}]`,
		string(encoded),
	)

	decoded, errParse := Parse(encoded, FormatJSON)
	require.NoError(t, errParse)
	require.Equal(t, items, decoded)
}

func TestFormatFromPath(t *testing.T) {
	format, errFormat := FormatFromPath("backlog.YML")
	require.NoError(t, errFormat)
	require.Equal(t, FormatYAML, format)

	format, errFormat = FormatFromPath("/tmp/backlog.json")
	require.NoError(t, errFormat)
	require.Equal(t, FormatJSON, format)

	_, errFormat = FormatFromPath("backlog.txt")
	require.ErrorIs(t, errFormat, ErrUnknownFormat)
}

func TestParseWholeFloats(t *testing.T) {
	t.Run(
		"1. json",
		func(t *testing.T) {
			items, errParse := Parse(
				[]byte(`[{"name": "A", "priority": 1.0, "size": 3.0, "maxTracks": 2}]`),
				FormatJSON,
			)
			require.NoError(t, errParse)
			require.Equal(t,
				[]roadmap.WorkItem{{Name: "A", Priority: 1, Size: 3, MaxTracks: 2}},
				items,
			)
		},
	)

	t.Run(
		"2. yaml",
		func(t *testing.T) {
			items, errParse := Parse(
				[]byte("- name: A\n  priority: 1.0\n  size: 3.0\n  maxTracks: 2\n"),
				FormatYAML,
			)
			require.NoError(t, errParse)
			require.Equal(t,
				[]roadmap.WorkItem{{Name: "A", Priority: 1, Size: 3, MaxTracks: 2}},
				items,
			)
		},
	)

	t.Run(
		"3. fractional json size",
		func(t *testing.T) {
			_, errParse := Parse(
				[]byte(`[{"name": "A", "priority": 1, "size": 1.5, "maxTracks": 1}]`),
				FormatJSON,
			)
			require.ErrorIs(t, errParse, roadmap.ErrInvalidItem)
		},
	)
}
