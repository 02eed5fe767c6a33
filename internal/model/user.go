package model

// User is an entry of the credential store.
type User struct {
	Username     string `json:"username" yaml:"username"`
	Email        string `json:"email,omitempty" yaml:"email"`
	FullName     string `json:"full_name,omitempty" yaml:"full_name"`
	Disabled     bool   `json:"disabled" yaml:"disabled"`
	PasswordHash string `json:"-" yaml:"password_hash"`
}

// Token is the bearer token returned on login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
