package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table              string
	ID                 string
	Username           string
	NormalizedUsername string
	Email              string
	Password           string
	CreatedAt          string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:              "users.account",
	ID:                 "id",
	Username:           "username",
	NormalizedUsername: "normalizedusername",
	Email:              "email",
	Password:           "passwordhash",
	CreatedAt:          "createdat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.NormalizedUsername, t.Email, t.Password, t.CreatedAt}
}
