package domain

// User roles are informational only; nothing enforces them as access control.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User models an account in the users collection.
type User struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Avatar       string `json:"avatar" bson:"avatar"`
	Role         string `json:"role" bson:"role"`
}

// WithoutPassword returns a copy safe to persist as the current session
// document and to return from the API.
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	return u
}

// Settings is the single settings document.
type Settings struct {
	Theme         string `json:"theme" bson:"theme"` // "light" or "dark"
	Notifications bool   `json:"notifications" bson:"notifications"`
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() Settings {
	return Settings{Theme: "light", Notifications: true}
}
