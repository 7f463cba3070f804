package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateWithFallback(t *testing.T) {
	const fallback = "Embedded: {{ .Word }}"

	tests := []struct {
		name         string
		templatePath func(t *testing.T) string

		wantTemplateName     string
		wantTemplateContents string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				content := `Filesystem Template: {{ .Word }} {{ join .Inflections "/" }}`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			},
			wantTemplateName:     "custom.md.go.tmpl",
			wantTemplateContents: "Filesystem Template: hund hunden/hundar",
		},
		{
			name:                 "uses embedded template when no path is configured",
			templatePath:         func(t *testing.T) string { return "" },
			wantTemplateName:     "fallback.tmpl",
			wantTemplateContents: "Embedded: hund",
		},
		{
			name:                 "uses embedded template when file doesn't exist",
			templatePath:         func(t *testing.T) string { return "/non/existent/invalid.md.go.tmpl" },
			wantTemplateName:     "fallback.tmpl",
			wantTemplateContents: "Embedded: hund",
		},
		{
			name: "uses embedded template when filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "invalid.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`Bad: {{ .Unclosed`), 0644))
				return templatePath
			},
			wantTemplateName:     "fallback.tmpl",
			wantTemplateContents: "Embedded: hund",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTemplateWithFallback(tt.templatePath(t), "fallback.tmpl", fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, got.Name())

			var buf bytes.Buffer
			require.NoError(t, got.Execute(&buf, EntryTemplate{
				Word:        "hund",
				Inflections: []string{"hunden", "hundar"},
			}))
			assert.Equal(t, tt.wantTemplateContents, buf.String())
		})
	}
}

func TestParseTemplateWithFallback_InvalidEmbedded(t *testing.T) {
	_, err := parseTemplateWithFallback("", "broken.tmpl", "{{ .Word")
	assert.Error(t, err)
}

func TestWriteEntry(t *testing.T) {
	tests := []struct {
		name string
		data EntryTemplate
		want string
	}{
		{
			name: "every section",
			data: EntryTemplate{
				Word:         "hund",
				Direction:    "Swedish to English",
				Class:        "nn",
				Language:     "sv",
				Comment:      "animal",
				Inflections:  []string{"hunden", "hundar"},
				Translations: []string{"dog", "hound (hunting)"},
				Synonyms:     []string{"vovve (level 2.0)"},
				Phonetics:    []string{"hun:d"},
				Examples:     []string{"hunden skäller: the dog barks", "en stor hund"},
				Definitions:  []string{"ett husdjur: a pet"},
				RelatedWords: []string{"hundkoja (compound)"},
				SeeAlso:      []string{"dog.swf (animation)"},
			},
			want: `# hund

_Swedish to English_

**Class:** nn

**Language:** sv

**Comment:** animal

**Inflections:** hunden, hundar

## Translations

- dog
- hound (hunting)

## Synonyms

- vovve (level 2.0)

## Phonetics

- hun:d

## Examples

- hunden skäller: the dog barks
- en stor hund

## Definitions

- ett husdjur: a pet

## Related words

- hundkoja (compound)

## See also

- dog.swf (animation)
`,
		},
		{
			name: "only the word",
			data: EntryTemplate{Word: "bok", Direction: "English to Swedish"},
			want: "# bok\n\n_English to Swedish_\n",
		},
		{
			name: "empty sections are omitted",
			data: EntryTemplate{
				Word:         "bok",
				Direction:    "Swedish to English",
				Translations: []string{"book"},
				Synonyms:     []string{},
			},
			want: "# bok\n\n_Swedish to English_\n\n## Translations\n\n- book\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteEntry(&buf, "", tt.data))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteEntry_CustomTemplate(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "entry.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{ .Word }}: {{ join .Translations \"; \" }}\n"), 0644))

	var buf bytes.Buffer
	require.NoError(t, WriteEntry(&buf, templatePath, EntryTemplate{Word: "bok", Translations: []string{"book", "beech (tree)"}}))
	assert.Equal(t, "bok: book; beech (tree)\n", buf.String())
}

func TestWriteEntry_ExecuteError(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "entry.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{ .Missing }}"), 0644))

	var buf bytes.Buffer
	err := WriteEntry(&buf, templatePath, EntryTemplate{Word: "bok"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmpl.Execute()")
}
