package domain

// Client is the renting party. The rental engine never mutates it.
type Client struct {
	ClientID  string `json:"clientID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AuditFields
}

// FullName joins first and last name.
func (c Client) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
