package model

import "time"

// Vehicle represents a vehicle owned by a user (table veicoli).
// The license plate is unique across the fleet.
type Vehicle struct {
	ID        string    `json:"id"`
	UserID    string    `json:"id_utente"`
	Marca     string    `json:"marca"`
	Modello   string    `json:"modello"`
	Targa     string    `json:"targa"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnedBy reports whether the vehicle belongs to the given user.
func (v *Vehicle) OwnedBy(userID string) bool {
	return v.UserID == userID
}
