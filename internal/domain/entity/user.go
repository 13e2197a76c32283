package entity

const (
	RoleClient  = "CLIENT"
	RoleCompany = "COMPANY"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID                 string `json:"id" firestore:"id"`
	Email              string `json:"email" firestore:"email"`
	DisplayName        string `json:"display_name" firestore:"displayName"`
	Role               string `json:"role" firestore:"role"`
	Affiliation        string `json:"affiliation,omitempty" firestore:"affiliation,omitempty"`
	Address            string `json:"address" firestore:"address"`
	ProfileDescription string `json:"profile_description" firestore:"profileDescription"`
	JoinedAt           int64  `json:"joined_at" firestore:"joinedAt"`
}

// PublicName is what other users see; the original app falls back to the
// email address when a display name was never set.
func (u *User) PublicName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleCompany, RoleAdmin:
		return true
	}
	return false
}
