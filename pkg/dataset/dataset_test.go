package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestFromRecord(t *testing.T) {
	testCases := []struct {
		record      map[string]any
		ok          bool
		expected    Entry
		description string
	}{
		{
			map[string]any{"key": "ㄱㄴ", "category": "C1", "answers": []any{"foo", " bar "}},
			true,
			Entry{Key: "ㄱㄴ", Category: "C1", Answers: []string{"foo", "bar"}},
			"plural answers",
		},
		{
			map[string]any{"key": "ㄱㄴ", "answer": " foo "},
			true,
			Entry{Key: "ㄱㄴ", Answers: []string{"foo"}},
			"singular answer",
		},
		{
			map[string]any{"key": "ㄱㄴ", "answers": "foo"},
			true,
			Entry{Key: "ㄱㄴ", Answers: []string{"foo"}},
			"answers given as a string",
		},
		{
			map[string]any{"key": "ㄱㄴ", "answers": []any{"a"}, "answer": "b"},
			true,
			Entry{Key: "ㄱㄴ", Answers: []string{"a"}},
			"list wins over singular",
		},
		{
			map[string]any{"key": "ㄱㄴ", "answers": []any{"", 3, "  ", "x"}},
			true,
			Entry{Key: "ㄱㄴ", Answers: []string{"x"}},
			"non-string and blank answers dropped",
		},
		{
			map[string]any{"key": "ㄱㄴ", "answers": []any{"\uFEFFfoo", "\uFEFF", "bar\u00a0"}},
			true,
			Entry{Key: "ㄱㄴ", Answers: []string{"foo", "bar"}},
			"byte order marks and unicode spaces trimmed",
		},
		{
			map[string]any{"key": "ㄱㄴ", "category": 7},
			true,
			Entry{Key: "ㄱㄴ", Answers: []string{}},
			"non-string category ignored",
		},
		{map[string]any{"key": ""}, false, Entry{}, "empty key"},
		{map[string]any{"answers": []any{"x"}}, false, Entry{}, "missing key"},
		{map[string]any{"key": 12}, false, Entry{}, "non-string key"},
		{nil, false, Entry{}, "nil record"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, ok := FromRecord(tc.record)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestTrimText(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		description string
	}{
		{"  foo\t", "foo", "ascii whitespace"},
		{"\uFEFFfoo", "foo", "leading byte order mark"},
		{"\u3000가나\u00a0", "가나", "ideographic and no-break spaces"},
		{"a\uFEFFb", "a\uFEFFb", "inner mark kept"},
		{"\uFEFF \uFEFF", "", "only marks and spaces"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, TrimText(tc.input))
		})
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	mp, err := msgpack.Marshal([]map[string]any{
		{"key": "ㄱㄴ", "category": "C1", "answers": []string{"foo"}},
		{"key": "", "answer": "skip"},
	})
	require.NoError(t, err)

	testCases := []struct {
		name        string
		data        []byte
		format      Format
		description string
	}{
		{"data.json", []byte(`[{"key":"ㄱㄴ","category":"C1","answers":["foo"]},{"key":"","answer":"skip"}]`), FormatJSON, "json"},
		{"data.js", []byte("window.CHOSEONG_DATA = [\n{\"key\":\"ㄱㄴ\",\"category\":\"C1\",\"answer\":\"foo\"},\n{\"answer\":\"skip\"}\n];\n"), FormatScript, "script"},
		{"data.yaml", []byte("- key: ㄱㄴ\n  category: C1\n  answers: [foo]\n- answer: skip\n"), FormatYAML, "yaml"},
		{"data.toml", []byte("[[entry]]\nkey = \"ㄱㄴ\"\ncategory = \"C1\"\nanswers = [\"foo\"]\n\n[[entry]]\nanswer = \"skip\"\n"), FormatTOML, "toml"},
		{"data.msgpack", mp, FormatMsgpack, "msgpack"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			path := writeFile(t, tc.name, tc.data)

			entries, stats, err := Load(path, FormatUnknown)
			require.NoError(t, err)
			assert.Equal(t, tc.format, stats.Format)
			assert.Equal(t, 2, stats.Records)
			assert.Equal(t, 1, stats.Skipped)
			require.Len(t, entries, 1)
			assert.Equal(t, Entry{Key: "ㄱㄴ", Category: "C1", Answers: []string{"foo"}}, entries[0])
		})
	}
}

func TestLoadExplicitFormat(t *testing.T) {
	path := writeFile(t, "data.txt", []byte(`[{"key":"k","answer":"a"}]`))

	_, _, err := Load(path, FormatUnknown)
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	entries, _, err := Load(path, FormatJSON)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.json"), FormatUnknown)
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", []byte(`{"key": "not an array"}`))
	_, _, err = Load(bad, FormatUnknown)
	assert.Error(t, err)

	empty := writeFile(t, "empty.json", []byte(`[]`))
	_, _, err = Load(empty, FormatUnknown)
	assert.True(t, errors.Is(err, ErrEmptyDataset))

	noArray := writeFile(t, "data.js", []byte(`window.CHOSEONG_DATA = null;`))
	_, _, err = Load(noArray, FormatUnknown)
	assert.Error(t, err)
}

func TestDecodeSkipsNonObjects(t *testing.T) {
	entries, stats, err := Decode([]byte(`[1, "x", null, {"key":"k","answer":"a"}]`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Records)
	assert.Equal(t, 3, stats.Skipped)
	assert.Len(t, entries, 1)
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		name     string
		expected Format
		wantErr  bool
	}{
		{"", FormatUnknown, false},
		{"json", FormatJSON, false},
		{"JS", FormatScript, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"mpk", FormatMsgpack, false},
		{"csv", FormatUnknown, true},
	}

	for _, tc := range testCases {
		got, err := ParseFormat(tc.name)
		if tc.wantErr {
			assert.Error(t, err, tc.name)
			continue
		}
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, got, tc.name)
	}
}

func TestSample(t *testing.T) {
	entries, stats, err := Sample()
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
	assert.Equal(t, 0, stats.Skipped)
}
