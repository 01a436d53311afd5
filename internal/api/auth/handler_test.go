package auth

import (
	"testing"

	"kala-hive/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, isPasswordStrong("abcdef12"))
	assert.True(t, isPasswordStrong("Pa55word"))

	assert.False(t, isPasswordStrong("short1"))
	assert.False(t, isPasswordStrong("onlyletters"))
	assert.False(t, isPasswordStrong("12345678"))
	assert.False(t, isPasswordStrong(""))
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, isEmailValid("jane@example.com"))
	assert.True(t, isEmailValid("jane.doe+tag@sub.example.co"))

	assert.False(t, isEmailValid("jane"))
	assert.False(t, isEmailValid("jane@"))
	assert.False(t, isEmailValid("@example.com"))
	assert.False(t, isEmailValid("jane@example"))
}

func TestGenerateVerificationTokenIsHex32(t *testing.T) {
	token := generateVerificationToken()
	assert.Len(t, token, 32)
	assert.NotEqual(t, token, generateVerificationToken())
}

func TestRedirectTargetFor(t *testing.T) {
	assert.Equal(t, "/onboarding/user-type", redirectTargetFor(users.Profile{}))
	assert.Equal(t, "/onboarding/artist-setup", redirectTargetFor(users.Profile{UserType: "artist"}))
	assert.Equal(t, "/onboarding/buyer-setup", redirectTargetFor(users.Profile{UserType: "buyer"}))
	assert.Equal(t, "/dashboard", redirectTargetFor(users.Profile{UserType: "artist", OnboardingCompleted: true}))
	assert.Equal(t, "/dashboard", redirectTargetFor(users.Profile{OnboardingCompleted: true}))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
