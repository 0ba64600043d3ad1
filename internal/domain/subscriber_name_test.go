package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid name", raw: "Ursula Le Guin"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: " \t\n ", wantErr: true},
		{name: "256 graphemes", raw: strings.Repeat("ё", 256)},
		{name: "257 graphemes", raw: strings.Repeat("a", 257), wantErr: true},
		{name: "combining marks count once", raw: strings.Repeat("a\u030a", 256)},
		{name: "combining marks over limit", raw: strings.Repeat("a\u030a", 257), wantErr: true},
		{name: "non ascii", raw: "Zoë Ångström"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSubscriberName(tt.raw)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "name", verr.Field)
				assert.Equal(t, tt.raw, verr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestParseSubscriberName_ForbiddenCharacters(t *testing.T) {
	for _, c := range []string{"/", "(", ")", `"`, "<", ">", `\`, "{", "}"} {
		t.Run(c, func(t *testing.T) {
			_, err := ParseSubscriberName("Ursula" + c + "Le Guin")
			require.Error(t, err)
		})
	}
}

func TestValidationErrorMessageNamesInput(t *testing.T) {
	_, err := ParseSubscriberName("<script>")
	require.Error(t, err)
	assert.Equal(t, `"<script>" is not a valid subscriber name.`, err.Error())
}

func TestValidationErrorMessageTruncatesLongInput(t *testing.T) {
	raw := strings.Repeat("ё", 300)
	_, err := ParseSubscriberName(raw)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, raw, verr.Value)

	want := `"` + strings.Repeat("ё", maxEchoedInputRunes) + `..." is not a valid subscriber name.`
	assert.Equal(t, want, err.Error())
}
