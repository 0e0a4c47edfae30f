package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Str0ng!pass", ""},
		{"too short", "S1!a", "at least 8 characters"},
		{"no uppercase", "weak1!pass", "uppercase"},
		{"no lowercase", "WEAK1!PASS", "lowercase"},
		{"no digit", "Weakpass!", "number"},
		{"no symbol", "Weakpass1", "symbol"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := verifyPasswordComplexity(tc.password)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSessionID(t *testing.T) {
	assert.Equal(t, "u1:d1", sessionID("u1", "d1"))
}
