package responses

type Login struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
