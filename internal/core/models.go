package core

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
