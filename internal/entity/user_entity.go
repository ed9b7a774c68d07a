package entity

type User struct {
	Id       uint
	Username string
	// Password holds the bcrypt hash, never the cleartext credential.
	Password string
}
