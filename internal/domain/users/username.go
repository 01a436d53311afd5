package users

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeUserName generates a URL-safe handle from a display name.
// Example: "John Doe" -> "john-doe"
func MakeUserName(displayName string) string {
	base := strings.ToLower(strings.TrimSpace(displayName))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "artist"
	}
	return base
}

// EnsureUserName ensures profile.UserName exists and is persisted.
// Uniqueness comes from suffixing with an increasing counter when the
// base handle is already taken.
func EnsureUserName(db *gorm.DB, profile *Profile) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("profile is nil")
	}
	if db == nil {
		return "", fmt.Errorf("db is nil")
	}

	if profile.UserName != nil && strings.TrimSpace(*profile.UserName) != "" {
		return strings.TrimSpace(*profile.UserName), nil
	}

	if profile.ID == "" {
		return "", fmt.Errorf("profile ID missing (call EnsureUserName after Create)")
	}

	base := MakeUserName(profile.FullName)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Model(&Profile{}).
			Where("user_name = ? AND id <> ?", candidate, profile.ID).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	profile.UserName = &candidate

	if err := db.
		Model(&Profile{}).
		Where("id = ?", profile.ID).
		Update("user_name", candidate).Error; err != nil {
		return "", err
	}

	return candidate, nil
}
