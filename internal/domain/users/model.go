package users

import "time"

const (
	UserTypeArtist = "artist"
	UserTypeBuyer  = "buyer"
)

type User struct {
	ID           string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string  `json:"name"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password     *string `gorm:"" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Role         string  `json:"role"`
	IsVerified   bool    `json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile carries the display attributes and onboarding state of a user.
// Created empty at signup; filled in by the onboarding flows.
type Profile struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_profiles_user_id" json:"user_id"`
	User   User   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	UserName        *string `gorm:"uniqueIndex:idx_profiles_user_name" json:"username,omitempty"`
	FullName        string  `json:"full_name"`
	Bio             string  `json:"bio"`
	Location        string  `json:"location"`
	Website         string  `json:"website"`
	ArtistStatement string  `json:"artist_statement,omitempty"`
	ProfileImage    *string `json:"profile_image,omitempty"`
	CoverImage      *string `json:"cover_image,omitempty"`

	UserType            string `gorm:"type:varchar(20)" json:"user_type"` // "artist" | "buyer", empty until chosen
	OnboardingCompleted bool   `gorm:"not null;default:false" json:"onboarding_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;not null;index"`
	Token     string `gorm:"not null;uniqueIndex:idx_verification_tokens_token"`
	Type      string `gorm:"type:varchar(30);not null;default:'email_verification'"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
