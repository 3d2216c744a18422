package model

// Product is a catalog entry. ID is assigned by the database on insert and is
// zero for a product that has not been persisted yet.
type Product struct {
	ID          int64   `json:"id"`
	ExtID       string  `json:"extId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Equal reports whether p and other are the same entity. Identity is the ID
// alone; the remaining fields are not compared.
func (p Product) Equal(other Product) bool {
	return p.ID == other.ID
}
