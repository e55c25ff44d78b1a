package models

// CatalogItem is a master-data lookup record: specialties, physicians, the
// medical-test catalog and referral sources all share this shape.
type CatalogItem struct {
	ID     string `json:"id,omitempty" bson:"_id,omitempty"`
	Code   string `json:"codigo" bson:"codigo"`
	Name   string `json:"nombre" bson:"nombre"`
	Active bool   `json:"activo" bson:"activo"`

	TimeModel `bson:",inline"`
}
