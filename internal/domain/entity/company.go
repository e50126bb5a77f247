package entity

// Company empresa con perfil público y ofertas asociadas.
type Company struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Logo          string   `json:"logo,omitempty"`
	Location      string   `json:"location"`
	Size          string   `json:"size,omitempty"`
	Description   string   `json:"description,omitempty"`
	Industries    []string `json:"industries,omitempty"`
	Founded       int      `json:"founded,omitempty"`
	Website       string   `json:"website,omitempty"`
	OpenPositions int      `json:"openPositions"`
}
