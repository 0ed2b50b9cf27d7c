package models

// User is a platform identity: a regular user, a doctor or an institution.
// The backend embeds a full snapshot of it inside posts, comments, chat
// rooms and messages; the client folds every snapshot into one user table
// and keeps only the id on the owning record.
type User struct {
	Id             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Role           string `json:"role"`
	IsVerified     bool   `json:"isVerified"`
	Specialization string `json:"specialization,omitempty"`
	Followers      int    `json:"followers"`
	Following      int    `json:"following"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// Role values.
const (
	RoleUser        = "user"
	RoleDoctor      = "doctor"
	RoleInstitution = "institution"
)

type HealthInterest struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}
