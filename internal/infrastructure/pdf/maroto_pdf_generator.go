// Package pdf génère le rapport d'inventaire imprimable (état des stocks
// dérivés du grand livre, à un instant donné).
//
// Mise en page A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nom de l'entreprise  │  Date du rapport            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SYNTHÈSE: produits / unités / alertes                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Code | Produit | Format | Stock | Min | Prix | État │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: mention de génération                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	appstock "github.com/Arnaud70/essikokoe/internal/application/stock"
)

var _ appstock.RapportGenerator = (*MarotoRapportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 160}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoRapportGenerator génère le rapport d'inventaire avec Maroto v2.
type MarotoRapportGenerator struct {
	entreprise string
}

// NewMarotoRapportGenerator construit le générateur.
func NewMarotoRapportGenerator(entreprise string) *MarotoRapportGenerator {
	return &MarotoRapportGenerator{entreprise: entreprise}
}

// GenererRapportInventaire génère le PDF et retourne ses octets.
func (g *MarotoRapportGenerator) GenererRapportInventaire(inv *dto.InventaireResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport d'inventaire", true).
		WithAuthor(g.entreprise, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(syntheseRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(inv.Inventaire) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: entreprise (gauche) et date du rapport (droite).
func (g *MarotoRapportGenerator) headerRow() core.Row {
	date := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.entreprise, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestion de stock — eau conditionnée", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RAPPORT D'INVENTAIRE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Établi le "+date, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// syntheseRow: totaux de l'inventaire.
func syntheseRow(inv *dto.InventaireResponse) core.Row {
	item := func(label string, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Color: c}),
		)
	}
	alerteColor := colorPrimary
	if inv.ProduitsEnAlerte > 0 {
		alerteColor = colorAlert
	}
	return row.New(14).Add(
		item("Produits au catalogue", fmt.Sprintf("%d", inv.TotalProduits), colorPrimary),
		item("Unités en stock", fmt.Sprintf("%d", inv.StockTotal), colorPrimary),
		item("Produits en alerte", fmt.Sprintf("%d", inv.ProduitsEnAlerte), alerteColor),
	)
}

// tableHeaderRow: en-tête de la table des produits.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Code", 2, align.Left),
		h("Produit", 3, align.Left),
		h("Format", 2, align.Center),
		h("Stock", 1, align.Right),
		h("Min.", 1, align.Right),
		h("Prix unit.", 2, align.Right),
		h("État", 1, align.Center),
	)
}

// tableRows: une ligne par produit; l'état est marqué en rouge sous le seuil.
func tableRows(lignes []dto.InventaireProduitDTO) []core.Row {
	result := make([]core.Row, 0, len(lignes))
	for _, l := range lignes {
		etat := "OK"
		etatColor := colorGray
		if l.EstCritique {
			etat = "CRITIQUE"
			etatColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(l.CodeProduit, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.NomProduit, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Format, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.StockActuel), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.StockMinimum), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.PrixUnitaire.StringFixed(2)+" FCFA", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(etat, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1, Color: etatColor,
			})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Stock dérivé du grand livre des mouvements. "+
				"Document généré automatiquement, sans valeur comptable.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
