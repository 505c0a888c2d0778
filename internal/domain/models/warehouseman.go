package models

// Warehouseman is an authenticated staff actor. The secret key is a flat
// shared credential looked up against the backend collection; the client
// never writes these records.
type Warehouseman struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SecretKey string `json:"secretKey"`
	City      string `json:"city"`
}
