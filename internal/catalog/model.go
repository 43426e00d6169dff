package catalog

// Category enumerates the three product kinds the store sells.
type Category string

const (
	CategoryOutfits     Category = "outfits"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// Subcategories within the catalog. Shoes split by gender, accessories by kind.
const (
	SubcategoryHis      = "his"
	SubcategoryHers     = "hers"
	SubcategoryHeadties = "headties_scarves"
	SubcategoryPerfumes = "perfumes"
)

// SizeMadeToOrder marks a bespoke line that is never counted against stock.
const SizeMadeToOrder = "made_to_order"

// VariantRecord is one row of a product's inventory table. Color is empty
// for accessories, which are tracked by size alone.
type VariantRecord struct {
	Size     string `json:"size"`
	Color    string `json:"color,omitempty"`
	Quantity int    `json:"quantity"`
}

type Image struct {
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

type Product struct {
	ID            string          `json:"_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Price         int64           `json:"price"`
	DiscountPrice *int64          `json:"discountPrice,omitempty"`
	Category      Category        `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	MainImage     Image           `json:"mainImage"`
	Inventory     []VariantRecord `json:"inventory"`
	IsFeatured    bool            `json:"isFeatured"`
	IsNew         bool            `json:"isNew"`

	// Revision is the content store's concurrency marker. Populated only by
	// ProductForUpdate reads.
	Revision string `json:"_rev,omitempty"`

	// Derived from the inventory table after decode.
	InStock       bool     `json:"inStock"`
	StockQuantity int      `json:"stockQuantity"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
}

// finalize recomputes the projected fields from the inventory table.
func (p *Product) finalize() {
	p.StockQuantity = 0
	p.InStock = false
	p.Sizes = p.Sizes[:0]
	p.Colors = p.Colors[:0]

	seenSizes := map[string]bool{}
	seenColors := map[string]bool{}

	for _, rec := range p.Inventory {
		p.StockQuantity += rec.Quantity
		if rec.Quantity > 0 {
			p.InStock = true
		}
		if !seenSizes[rec.Size] {
			seenSizes[rec.Size] = true
			p.Sizes = append(p.Sizes, rec.Size)
		}
		if rec.Color != "" && !seenColors[rec.Color] {
			seenColors[rec.Color] = true
			p.Colors = append(p.Colors, rec.Color)
		}
	}
}
