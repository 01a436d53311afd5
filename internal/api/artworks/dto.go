package artworks

import (
	"kala-hive/internal/domain/artworks"
	"kala-hive/internal/domain/users"

	"gorm.io/gorm"
)

type ArtistDTO struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	UserName *string `json:"username,omitempty"`
	Image    *string `json:"image,omitempty"`
}

type ArtworkDTO struct {
	artworks.Artwork
	Artist *ArtistDTO `json:"artist,omitempty"`
}

// attachArtists resolves the owning artist's display profile for each row
// with a batch lookup over the distinct artist ids on the page, instead of
// a join.
func attachArtists(db *gorm.DB, rows []artworks.Artwork) ([]ArtworkDTO, error) {
	ids := distinctArtistIDs(rows)

	userByID := map[string]users.User{}
	profileByUserID := map[string]users.Profile{}

	if len(ids) > 0 {
		var us []users.User
		if err := db.Where("id IN ?", ids).Find(&us).Error; err != nil {
			return nil, err
		}
		for _, u := range us {
			userByID[u.ID] = u
		}

		var ps []users.Profile
		if err := db.Where("user_id IN ?", ids).Find(&ps).Error; err != nil {
			return nil, err
		}
		for _, p := range ps {
			profileByUserID[p.UserID] = p
		}
	}

	out := make([]ArtworkDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, ArtworkDTO{
			Artwork: row,
			Artist:  buildArtistDTO(row.ArtistID, userByID, profileByUserID),
		})
	}
	return out, nil
}

func distinctArtistIDs(rows []artworks.Artwork) []string {
	seen := map[string]bool{}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if !seen[row.ArtistID] {
			seen[row.ArtistID] = true
			ids = append(ids, row.ArtistID)
		}
	}
	return ids
}

func buildArtistDTO(artistID string, userByID map[string]users.User, profileByUserID map[string]users.Profile) *ArtistDTO {
	dto := &ArtistDTO{ID: artistID, FullName: "Unknown"}

	if u, ok := userByID[artistID]; ok && u.Name != "" {
		dto.FullName = u.Name
	}
	if p, ok := profileByUserID[artistID]; ok {
		if p.FullName != "" {
			dto.FullName = p.FullName
		}
		dto.UserName = p.UserName
		dto.Image = p.ProfileImage
	}
	return dto
}
