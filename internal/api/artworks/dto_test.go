package artworks

import (
	"testing"

	"kala-hive/internal/domain/artworks"
	"kala-hive/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func TestDistinctArtistIDs(t *testing.T) {
	rows := []artworks.Artwork{
		{ArtistID: "a"},
		{ArtistID: "b"},
		{ArtistID: "a"},
		{ArtistID: "c"},
		{ArtistID: "b"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, distinctArtistIDs(rows))
	assert.Empty(t, distinctArtistIDs(nil))
}

func TestBuildArtistDTOPrefersProfileName(t *testing.T) {
	username := "jane-doe"
	image := "https://cdn.example.com/profiles/x"

	userByID := map[string]users.User{
		"u1": {ID: "u1", Name: "Jane"},
	}
	profileByUserID := map[string]users.Profile{
		"u1": {UserID: "u1", FullName: "Jane Doe", UserName: &username, ProfileImage: &image},
	}

	dto := buildArtistDTO("u1", userByID, profileByUserID)
	assert.Equal(t, "Jane Doe", dto.FullName)
	assert.Equal(t, &username, dto.UserName)
	assert.Equal(t, &image, dto.Image)
}

func TestBuildArtistDTOFallsBackToUserName(t *testing.T) {
	userByID := map[string]users.User{
		"u1": {ID: "u1", Name: "Jane"},
	}
	dto := buildArtistDTO("u1", userByID, map[string]users.Profile{})
	assert.Equal(t, "Jane", dto.FullName)
	assert.Nil(t, dto.UserName)
	assert.Nil(t, dto.Image)
}

func TestBuildArtistDTOUnknownArtist(t *testing.T) {
	dto := buildArtistDTO("ghost", map[string]users.User{}, map[string]users.Profile{})
	assert.Equal(t, "Unknown", dto.FullName)
}
