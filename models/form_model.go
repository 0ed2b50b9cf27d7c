package models

// Request payloads sent by the client.

type RegisterForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

type ProfileForm struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Bio            string `json:"bio,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type PostDraft struct {
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}
