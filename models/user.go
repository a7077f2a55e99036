package models

// User is a registered storefront customer. Password holds the bcrypt hash,
// never plaintext; it is stripped with Public() before a record leaves the
// store layer.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password,omitempty"`
	CarMake     string `json:"carMake"`
	CarModel    string `json:"carModel"`
	VINCode     string `json:"vinCode"`
	IsAdmin     bool   `json:"isAdmin"`
}

// Public returns a copy with the password hash removed. The json tag on
// Password carries omitempty, so the field disappears from responses entirely.
func (u User) Public() User {
	u.Password = ""
	return u
}
