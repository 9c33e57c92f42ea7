package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGeneratePKCE(t *testing.T) {
	verifier, state, err := GeneratePKCE()
	require.NoError(t, err)

	// RFC 7636: verifier 长度 43-128
	assert.Len(t, verifier, 43)
	assert.Len(t, state, 32)

	challenge := oauth2.S256ChallengeFromVerifier(verifier)
	assert.Len(t, challenge, 43)
	assert.NotContains(t, challenge, "=")
}

func TestGeneratePKCE_Unique(t *testing.T) {
	v1, s1, err := GeneratePKCE()
	require.NoError(t, err)
	v2, s2, err := GeneratePKCE()
	require.NoError(t, err)

	assert.NotEqual(t, v1, v2)
	assert.NotEqual(t, s1, s2)
}
