// Package pdf implementa la generación del CV del candidato en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre completo + Título profesional                │
//	│  CONTACTO: Email | Tel | Ubicación | LinkedIn / GitHub       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN PROFESIONAL                                         │
//	│  EXPERIENCIA: cargo @ empresa, fechas, descripción           │
//	│  EDUCACIÓN: título — institución (año)                       │
//	│  CERTIFICACIONES                                             │
//	│  HABILIDADES: nombre (años)                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCVGenerator implementa usecase.CVGenerator usando Maroto v2.
type MarotoCVGenerator struct{}

// NewMarotoCVGenerator construye el generador.
func NewMarotoCVGenerator() *MarotoCVGenerator { return &MarotoCVGenerator{} }

// GenerateCV genera el PDF del perfil y devuelve sus bytes.
func (g *MarotoCVGenerator) GenerateCV(_ context.Context, u *entity.User) ([]byte, error) {
	fullName := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if fullName == "" {
		fullName = u.Email
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("CV - "+fullName, true).
		WithAuthor(fullName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(u, fullName))
	m.AddRows(contactRow(u))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if u.Summary != "" {
		m.AddRows(sectionTitleRow("RESUMEN PROFESIONAL"))
		m.AddRows(paragraphRow(u.Summary))
	}

	if len(u.Experiences) > 0 {
		m.AddRows(sectionTitleRow("EXPERIENCIA LABORAL"))
		for _, r := range experienceRows(u.Experiences) {
			m.AddRows(r)
		}
	}

	if len(u.Educations) > 0 {
		m.AddRows(sectionTitleRow("EDUCACIÓN"))
		for _, r := range educationRows(u.Educations) {
			m.AddRows(r)
		}
	}

	if len(u.Certifications) > 0 {
		m.AddRows(sectionTitleRow("CERTIFICACIONES"))
		for _, r := range certificationRows(u.Certifications) {
			m.AddRows(r)
		}
	}

	if len(u.Skills) > 0 {
		m.AddRows(sectionTitleRow("HABILIDADES"))
		m.AddRows(skillsRow(u.Skills))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre completo (izq) y ubicación + años de experiencia (der).
func headerRow(u *entity.User, fullName string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(fullName, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(u.Title, "—"), props.Text{
				Size: 10, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(u.Location, props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New(experienceLabel(u.YearsExperience), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// contactRow: email, teléfono y enlaces en una sola línea.
func contactRow(u *entity.User) core.Row {
	parts := []string{u.Email}
	if u.Phone != "" {
		parts = append(parts, u.Phone)
	}
	if u.LinkedIn != "" {
		parts = append(parts, u.LinkedIn)
	}
	if u.GitHub != "" {
		parts = append(parts, u.GitHub)
	}
	if u.Portfolio != "" {
		parts = append(parts, u.Portfolio)
	}
	return row.New(7).Add(col.New(12).Add(
		text.New(strings.Join(parts, "   |   "), props.Text{
			Size: 8, Top: 1, Color: colorGray,
		}),
	))
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		}),
	))
}

func paragraphRow(body string) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New(body, props.Text{Size: 9, Top: 1}),
	))
}

// experienceRows: una entrada por cada experiencia laboral.
func experienceRows(exps []entity.Experience) []core.Row {
	result := make([]core.Row, 0, len(exps)*2)
	for _, e := range exps {
		dates := e.StartDate
		if e.EndDate != "" {
			dates += " – " + e.EndDate
		} else if dates != "" {
			dates += " – Actual"
		}
		result = append(result, row.New(8).Add(
			col.New(8).Add(text.New(
				fmt.Sprintf("%s — %s", e.Position, e.Company),
				props.Text{Style: fontstyle.Bold, Size: 9, Top: 1},
			)),
			col.New(4).Add(text.New(dates, props.Text{
				Size: 8, Align: align.Right, Top: 1.5, Color: colorGray,
			})),
		))
		if e.Description != "" {
			result = append(result, row.New(9).Add(col.New(12).Add(
				text.New(e.Description, props.Text{Size: 8.5, Top: 0.5, Left: 2}),
			)))
		}
	}
	return result
}

// educationRows: título — institución (año).
func educationRows(edus []entity.Education) []core.Row {
	result := make([]core.Row, 0, len(edus))
	for _, e := range edus {
		detail := e.Degree
		if e.Field != "" {
			detail += " en " + e.Field
		}
		result = append(result, row.New(8).Add(
			col.New(9).Add(
				text.New(detail, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
				text.New(e.Institution, props.Text{Size: 8, Top: 5, Color: colorGray}),
			),
			col.New(3).Add(text.New(e.Year, props.Text{
				Size: 8, Align: align.Right, Top: 1.5, Color: colorGray,
			})),
		))
	}
	return result
}

// certificationRows: nombre + emisor + año.
func certificationRows(certs []entity.Certification) []core.Row {
	result := make([]core.Row, 0, len(certs))
	for _, c := range certs {
		detail := c.Name
		if c.Issuer != "" {
			detail += " — " + c.Issuer
		}
		result = append(result, row.New(6).Add(
			col.New(9).Add(text.New(detail, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(c.Year, props.Text{
				Size: 8, Align: align.Right, Top: 1.5, Color: colorGray,
			})),
		))
	}
	return result
}

// skillsRow: lista plana "Go (5 años), Kubernetes (3 años), ...".
func skillsRow(skills []entity.Skill) core.Row {
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if s.Years != "" {
			parts = append(parts, fmt.Sprintf("%s (%s años)", s.Name, s.Years))
		} else {
			parts = append(parts, s.Name)
		}
	}
	return row.New(12).Add(col.New(12).Add(
		text.New(strings.Join(parts, ", "), props.Text{Size: 9, Top: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func experienceLabel(years string) string {
	if years == "" {
		return ""
	}
	return years + " años de experiencia"
}
