package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textRequest struct {
	Text    string `json:"text" validate:"required"`
	SigFigs *int   `json:"sig_figs" validate:"omitempty,gte=0"`
}

type selfValidating struct {
	Value int `json:"value"`
}

func (s selfValidating) Validate() error {
	if s.Value < 0 {
		return errors.New("value must not be negative")
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"text": "0", "sig_figs": 3}`, false},
		{"unknown field", `{"text": "0", "precision": 3}`, true},
		{"malformed", `{"text": `, true},
		{"trailing object", `{"text": "0"} {"text": "1"}`, true},
		{"trailing brace", `{"text": "0"}}`, true},
		{"trailing bracket", `{"text": "0"}]`, true},
		{"trailing whitespace", "{\"text\": \"0\", \"sig_figs\": 3}\n", false},
		{"too large", `{"text": "` + strings.Repeat("1", MaxRequestBytes) + `"}`, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var v textRequest
			err := DecodeJSON(req, &v)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0", v.Text)
			require.NotNil(t, v.SigFigs)
			assert.Equal(t, 3, *v.SigFigs)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	three, negative := 3, -1
	assert.NoError(t, ValidateRequest(textRequest{Text: "0"}))
	assert.NoError(t, ValidateRequest(textRequest{Text: "0", SigFigs: &three}))
	assert.Error(t, ValidateRequest(textRequest{}))
	assert.Error(t, ValidateRequest(textRequest{Text: "0", SigFigs: &negative}))

	assert.NoError(t, ValidateRequest(selfValidating{Value: 1}))
	assert.Error(t, ValidateRequest(selfValidating{Value: -1}))
}
