// Package inventory answers stock questions against a product's variant
// table and reconciles authoritative stock around payments.
//
// All of the query functions here are pure: they never mutate and never
// perform I/O. Callers fetch the product first.
package inventory

import (
	"strings"

	"adornia-be/internal/catalog"
)

// StockForVariant returns the counted stock for a size/color combination.
// Accessories carry no color dimension, so they match by size alone; for
// outfits and shoes the color must match case-insensitively, with an empty
// requested color matching any. No matching record means zero.
func StockForVariant(p *catalog.Product, size, color string) int {
	if idx := findVariant(p, size, color); idx >= 0 {
		return p.Inventory[idx].Quantity
	}
	return 0
}

// TotalStock sums every variant's quantity.
func TotalStock(p *catalog.Product) int {
	total := 0
	for _, rec := range p.Inventory {
		total += rec.Quantity
	}
	return total
}

func IsVariantInStock(p *catalog.Product, size, color string) bool {
	return StockForVariant(p, size, color) > 0
}

// AvailableVariants filters the table to records with stock.
func AvailableVariants(p *catalog.Product) []catalog.VariantRecord {
	var out []catalog.VariantRecord
	for _, rec := range p.Inventory {
		if rec.Quantity > 0 {
			out = append(out, rec)
		}
	}
	return out
}

func AvailableSizes(p *catalog.Product) []string {
	var out []string
	seen := map[string]bool{}
	for _, rec := range p.Inventory {
		if rec.Quantity > 0 && !seen[rec.Size] {
			seen[rec.Size] = true
			out = append(out, rec.Size)
		}
	}
	return out
}

func AvailableColors(p *catalog.Product) []string {
	var out []string
	seen := map[string]bool{}
	for _, rec := range p.Inventory {
		if rec.Quantity > 0 && rec.Color != "" && !seen[rec.Color] {
			seen[rec.Color] = true
			out = append(out, rec.Color)
		}
	}
	return out
}

// AvailableColorsForSize projects the in-stock colors for a fixed size.
// Empty by convention for accessories, which have no color dimension.
func AvailableColorsForSize(p *catalog.Product, size string) []string {
	if p.Category == catalog.CategoryAccessories {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for _, rec := range p.Inventory {
		if rec.Size == size && rec.Quantity > 0 && rec.Color != "" && !seen[rec.Color] {
			seen[rec.Color] = true
			out = append(out, rec.Color)
		}
	}
	return out
}

// AvailableSizesForColor projects the in-stock sizes for a fixed color.
// Empty by convention for accessories.
func AvailableSizesForColor(p *catalog.Product, color string) []string {
	if p.Category == catalog.CategoryAccessories {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for _, rec := range p.Inventory {
		if strings.EqualFold(rec.Color, color) && rec.Quantity > 0 && !seen[rec.Size] {
			seen[rec.Size] = true
			out = append(out, rec.Size)
		}
	}
	return out
}

// findVariant locates a variant record using the categorical matching rule.
// An empty requested color falls back to size-only matching, so colorless
// lines still resolve against colored variant tables. Returns -1 when
// nothing matches.
func findVariant(p *catalog.Product, size, color string) int {
	for i, rec := range p.Inventory {
		if rec.Size != size {
			continue
		}
		if p.Category == catalog.CategoryAccessories {
			return i
		}
		if color == "" || strings.EqualFold(rec.Color, color) {
			return i
		}
	}
	return -1
}
