package domain

import "time"

// Product is a single stock record. Code is the unique natural key used by
// every inventory endpoint.
type Product struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"produto" bson:"produto"`
	Price     float64   `json:"preco" bson:"preco"`
	Brand     string    `json:"marca,omitempty" bson:"marca,omitempty"`
	Color     string    `json:"cor,omitempty" bson:"cor,omitempty"`
	Code      string    `json:"codigo" bson:"codigo"`
	Quantity  int       `json:"quantidade" bson:"quantidade"`
	Condition string    `json:"condicao,omitempty" bson:"condicao,omitempty"`
	Weight    float64   `json:"peso,omitempty" bson:"peso,omitempty"`
	Notes     string    `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
