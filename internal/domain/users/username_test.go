package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUserName(t *testing.T) {
	assert.Equal(t, "john-doe", MakeUserName("John Doe"))
	assert.Equal(t, "jos-lvarez", MakeUserName("José Álvarez"))
	assert.Equal(t, "a-b", MakeUserName("a---b"))
	assert.Equal(t, "jane", MakeUserName("  Jane  "))
	assert.Equal(t, "artist", MakeUserName(""))
	assert.Equal(t, "artist", MakeUserName("!!!"))
}
