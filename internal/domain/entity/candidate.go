package entity

// Candidate perfil público en el directorio de candidatos.
type Candidate struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Experience   string   `json:"experience"` // años, como texto
	Skills       []string `json:"skills"`
	Avatar       string   `json:"avatar,omitempty"`
	Availability string   `json:"availability,omitempty"`
	OpenToRemote bool     `json:"openToRemote"`
}
