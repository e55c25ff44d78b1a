package requests

// CreatePatient carries the intake form. Optional contact fields are pointers
// so that "not sent" and "cleared" are distinguishable on update.
type CreatePatient struct {
	Name      string  `json:"nombre" validate:"required"`
	Surname1  string  `json:"apellido1" validate:"required"`
	Surname2  *string `json:"apellido2"`
	DNI       string  `json:"dni" validate:"required"`
	SIP       string  `json:"sip" validate:"required,sip"`
	NSS       *string `json:"nss"`
	NHC       string  `json:"nhc" validate:"required"`
	BirthDate string  `json:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
	Sex       string  `json:"sexo" validate:"required,oneof=hombre mujer otro"`

	Address    *string `json:"direccion"`
	PostalCode *string `json:"codigoPostal"`
	Phone      *string `json:"telefono"`
}

type UpdatePatient struct {
	Name      string  `json:"nombre" validate:"required"`
	Surname1  string  `json:"apellido1" validate:"required"`
	Surname2  *string `json:"apellido2"`
	DNI       string  `json:"dni" validate:"required"`
	SIP       string  `json:"sip" validate:"required,sip"`
	NSS       *string `json:"nss"`
	NHC       string  `json:"nhc" validate:"required"`
	BirthDate string  `json:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
	Sex       string  `json:"sexo" validate:"required,oneof=hombre mujer otro"`

	Address    *string `json:"direccion"`
	PostalCode *string `json:"codigoPostal"`
	Phone      *string `json:"telefono"`
}

// SearchPatient is a priority-fallback lookup, not a conjunctive filter: the
// highest-priority non-empty field (dni, sip, nhc, apellido) is the only one
// consulted.
type SearchPatient struct {
	DNI     string `json:"dni"`
	SIP     string `json:"sip"`
	NHC     string `json:"nhc"`
	Surname string `json:"apellido"`
}
