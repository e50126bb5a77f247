package entity

import "github.com/shopspring/decimal"

// Job oferta de empleo publicada en el portal.
type Job struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Location     string          `json:"location"`
	Type         string          `json:"type"` // Full-time, Contract...
	Salary       string          `json:"salary"` // rango legible ("$90K - $120K")
	SalaryMin    decimal.Decimal `json:"salaryMin,omitempty"`
	SalaryMax    decimal.Decimal `json:"salaryMax,omitempty"`
	Tags         []string        `json:"tags"`
	Logo         string          `json:"logo,omitempty"`
	IsRemote     bool            `json:"isRemote"`
	PostedAt     string          `json:"postedAt,omitempty"`
	ExternalLink string          `json:"externalLink,omitempty"`
}
