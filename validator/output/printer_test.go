package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/liuran001/SocialValidator-Go/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []validator.Result {
	return []validator.Result{
		{
			Request:    validator.Request{Platform: "telegram", Field: "id", Value: "Durov"},
			Normalized: "durov",
		},
		{
			Request: validator.Request{Platform: "telegram", Field: "id", Value: "1bad"},
			Err:     validator.NewMalformedError("telegram", "id", "ID must start with a letter", "1bad"),
		},
		{
			Request: validator.Request{Platform: "youtube", Field: "username", Value: "youtube"},
			Err:     validator.NewReservedError("youtube", "username", "Username is reserved", "youtube"),
		},
		{
			Request: validator.Request{Platform: "telegram", Field: "bio", Value: "x"},
			Err:     validator.NewUnknownFieldError("telegram", "bio"),
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"TABLE", FormatTable},
		{" json ", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("yaml")
	assert.Error(t, err)
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"Never", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColors(t *testing.T) {
	assert.True(t, ResolveColors(ColorAlways))
	assert.False(t, ResolveColors(ColorNever))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ResolveColors(ColorAuto))
	assert.True(t, ResolveColors(ColorAlways))
}

func TestResolveColorsDumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.False(t, ResolveColors(ColorAuto))
}

func TestPrintTextWithoutColors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText, false)

	require.NoError(t, p.Print(sampleResults()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `[OK] telegram id "Durov" -> "durov"`, lines[0])
	assert.Equal(t, `[INVALID] telegram id "1bad": ID must start with a letter`, lines[1])
	assert.Equal(t, `[RESERVED] youtube username "youtube": Username is reserved`, lines[2])
	assert.True(t, strings.HasPrefix(lines[3], `[ERROR] telegram bio "x": `))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON, false)

	require.NoError(t, p.Print(sampleResults()))

	dec := json.NewDecoder(&buf)
	var got []record
	for dec.More() {
		var rec record
		require.NoError(t, dec.Decode(&rec))
		got = append(got, rec)
	}

	require.Len(t, got, 4)
	assert.Equal(t, record{Platform: "telegram", Field: "id", Value: "Durov", Status: statusOK, Normalized: "durov"}, got[0])
	assert.Equal(t, statusInvalid, got[1].Status)
	assert.Equal(t, "ID must start with a letter", got[1].Reason)
	assert.Empty(t, got[1].Normalized)
	assert.Equal(t, statusReserved, got[2].Status)
	assert.Equal(t, statusError, got[3].Status)
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable, false)

	require.NoError(t, p.Print(sampleResults()))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "PLATFORM")
	assert.Contains(t, out, "durov")
	assert.Contains(t, out, "Username is reserved")
	assert.Contains(t, out, statusInvalid)
}

func TestDescribe(t *testing.T) {
	status, reason := describe(errors.New("pool closed"))
	assert.Equal(t, statusError, status)
	assert.Equal(t, "pool closed", reason)
}

func TestEmitAndFlush(t *testing.T) {
	results := sampleResults()

	var text bytes.Buffer
	p := NewPrinter(&text, FormatText, false)
	require.NoError(t, p.Emit(results[0]))
	assert.Equal(t, "[OK] telegram id \"Durov\" -> \"durov\"\n", text.String())
	require.NoError(t, p.Flush())
	assert.Equal(t, 1, strings.Count(text.String(), "\n"))

	var table bytes.Buffer
	p = NewPrinter(&table, FormatTable, false)
	for _, res := range results {
		require.NoError(t, p.Emit(res))
	}
	assert.Empty(t, table.String(), "table rows wait for Flush")
	require.NoError(t, p.Flush())
	assert.Contains(t, table.String(), "durov")
	assert.Contains(t, table.String(), "Username is reserved")

	table.Reset()
	require.NoError(t, p.Flush())
	assert.Empty(t, table.String())
}
