// Package identity turns login credentials into user records.
package identity

// User is the identity record of a chat participant. The JSON shape is the
// one persisted under the profile's user key.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Status    string `json:"status,omitempty"`
	Online    bool   `json:"online,omitempty"`
	Email     string `json:"email"`
}

// ProfileUpdate carries the editable fields of a User. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	Name   *string
	Status *string
}

// Apply returns u with the non-nil fields of p applied.
func (p ProfileUpdate) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	return u
}

// MergeOver fills the zero fields of u from base. Login results carry only
// what the credential source knows; the rest comes from the default profile.
func MergeOver(base, u User) User {
	if u.ID == "" {
		u.ID = base.ID
	}
	if u.Name == "" {
		u.Name = base.Name
	}
	if u.AvatarURL == "" {
		u.AvatarURL = base.AvatarURL
	}
	if u.Status == "" {
		u.Status = base.Status
	}
	if !u.Online {
		u.Online = base.Online
	}
	if u.Email == "" {
		u.Email = base.Email
	}
	return u
}
