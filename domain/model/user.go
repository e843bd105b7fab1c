package model

import "time"

// User is the profile owned by the auth collaborator. The core only needs
// id/username/avatar for display and foreign keys.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReqLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ReqRegister struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResAuth is the login/register response payload.
type ResAuth struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	Token           string `json:"token,omitempty"`
	User            *User  `json:"user,omitempty"`
}

// CreatedAtOrNow returns CreatedAt, defaulting to now for freshly registered users.
func (u User) CreatedAtOrNow(now time.Time) time.Time {
	if u.CreatedAt.IsZero() {
		return now
	}
	return u.CreatedAt
}
