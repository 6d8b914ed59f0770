package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	headers := []string{"Nome", "Preço (R$)", "Observações"}
	rows := [][]string{
		{"HD 1TB", "250,00", "Nenhuma observação"},
		{"Cabo \"HDMI\"", "15,90", "linha 1\nlinha 2"},
	}

	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{
			name:   "csv quotes commas quotes and newlines",
			format: FormatCSV,
			want: "\ufeffNome,Preço (R$),Observações\n" +
				"HD 1TB,\"250,00\",Nenhuma observação\n" +
				"\"Cabo \"\"HDMI\"\"\",\"15,90\",\"linha 1\nlinha 2\"\n",
		},
		{
			name:   "xls is tab separated",
			format: FormatXLS,
			want: "\ufeffNome\tPreço (R$)\tObservações\n" +
				"HD 1TB\t250,00\tNenhuma observação\n" +
				"\"Cabo \"\"HDMI\"\"\"\t15,90\t\"linha 1\nlinha 2\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.format, headers, rows))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWrite_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, []string{"ID", "Cliente"}, nil))
	assert.Equal(t, "\ufeffID,Cliente\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)
	assert.Equal(t, ".csv", f.Extension())

	f, err = ParseFormat("xls")
	require.NoError(t, err)
	assert.Contains(t, f.ContentType(), "ms-excel")

	_, err = ParseFormat("pdf")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	assert.ErrorIs(t, Write(&bytes.Buffer{}, "pdf", nil, nil), ErrUnsupportedFormat)
}
