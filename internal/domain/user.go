package domain

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

type User struct {
	ID           int32   `json:"id"`
	OrgID        int32   `json:"org_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	PasswordHash string  `json:"-"`
	DeviceToken  *string `json:"-"` // FCM registration token, set by the mobile app
	Active       bool    `json:"active"`
}
