package models

// User roles. A single role exists today; the field is stored so more
// can be added without a migration.
const (
	UserRole = "user"
)

type User struct {
	ID        string `bson:"_id" json:"id"`
	Email     string `bson:"email" json:"email"`
	Password  string `bson:"password" json:"-"`
	FirstName string `bson:"first" json:"first"`
	LastName  string `bson:"last" json:"last"`
	Phone     string `bson:"phone" json:"phone"`
	Role      string `bson:"role" json:"role"`
}

// AccountDetails is the public-safe projection of a User. No password,
// no credential material of any kind.
type AccountDetails struct {
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (u User) AccountDetails() AccountDetails {
	return AccountDetails{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}
