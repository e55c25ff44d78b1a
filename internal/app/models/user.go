package models

// User is a staff account. Its email is the identity threaded into every
// write as creadoPor/actualizadoPor.
type User struct {
	ID       string `json:"id,omitempty" bson:"_id,omitempty"`
	Email    string `json:"email" bson:"email"`
	Name     string `json:"nombre" bson:"nombre"`
	Password string `json:"-" bson:"password"`
	Role     string `json:"rol" bson:"rol"`

	TimeModel `bson:",inline"`
}
