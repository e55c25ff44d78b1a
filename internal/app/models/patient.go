package models

// Patient is the identity record of the directory. DNI, SIP and NHC are each
// unique across the whole collection, backed by unique indexes.
type Patient struct {
	ID          string  `json:"id,omitempty" bson:"_id,omitempty"`
	PatientCode string  `json:"codigoPaciente" bson:"codigoPaciente"`
	Name        string  `json:"nombre" bson:"nombre"`
	Surname1    string  `json:"apellido1" bson:"apellido1"`
	Surname2    *string `json:"apellido2,omitempty" bson:"apellido2"`

	DNI string  `json:"dni" bson:"dni"`
	SIP string  `json:"sip" bson:"sip"`
	NSS *string `json:"nss,omitempty" bson:"nss"`
	NHC string  `json:"nhc" bson:"nhc"`

	BirthDate string `json:"fechaNacimiento" bson:"fechaNacimiento"`
	Sex       string `json:"sexo" bson:"sexo"`

	Address    *string `json:"direccion,omitempty" bson:"direccion"`
	PostalCode *string `json:"codigoPostal,omitempty" bson:"codigoPostal"`
	Phone      *string `json:"telefono,omitempty" bson:"telefono"`

	CreatedBy string `json:"creadoPor" bson:"creadoPor"`
	UpdatedBy string `json:"actualizadoPor,omitempty" bson:"actualizadoPor,omitempty"`
	TimeModel `bson:",inline"`
}

func (p *Patient) FullName() string {
	name := p.Name + " " + p.Surname1
	if p.Surname2 != nil && *p.Surname2 != "" {
		name += " " + *p.Surname2
	}
	return name
}
