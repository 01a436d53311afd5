package artworks

import (
	"time"

	"kala-hive/internal/domain/users"

	"github.com/lib/pq"
)

type Artwork struct {
	ID       string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ArtistID string     `gorm:"type:uuid;not null;index" json:"artist_id"`
	Artist   users.User `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	ImageURL     string `gorm:"not null" json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`

	Category string         `gorm:"index" json:"category"`
	Tags     pq.StringArray `gorm:"type:text[]" json:"tags"`

	ViewCount int `gorm:"not null;default:0" json:"view_count"`
	LikeCount int `gorm:"not null;default:0" json:"like_count"`

	IsFeatured bool `gorm:"not null;default:false" json:"is_featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArtworkLike is a join row; at most one per (user, artwork), enforced by
// the composite unique index, not by application logic.
type ArtworkLike struct {
	ID        string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;uniqueIndex:idx_artwork_likes_user_artwork,priority:1" json:"user_id"`
	User      users.User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	ArtworkID string     `gorm:"type:uuid;not null;uniqueIndex:idx_artwork_likes_user_artwork,priority:2;index" json:"artwork_id"`
	Artwork   Artwork    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// ArtworkView is an append-only impression log; UserID is nil for
// anonymous views.
type ArtworkView struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    *string   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ArtworkID string    `gorm:"type:uuid;not null;index" json:"artwork_id"`
	Artwork   Artwork   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
