package inventory

import (
	"context"
	"fmt"

	"adornia-be/internal/cart"
	"adornia-be/internal/catalog"
	"adornia-be/internal/logger"

	"go.uber.org/zap"
)

// Result lists everything that would oversell if the order went through now.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validator batch-checks requested quantities against freshly fetched
// authoritative stock. It is an advisory gate, not a lock: nothing reserves
// stock between a passing check and the actual purchase.
type Validator struct {
	catalog catalog.Client
}

func NewValidator(c catalog.Client) *Validator {
	return &Validator{catalog: c}
}

func (v *Validator) Validate(ctx context.Context, lines []cart.LineItem) (Result, error) {
	ids := distinctProductIDs(lines)
	if len(ids) == 0 {
		return Result{Valid: true}, nil
	}

	products, err := v.catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		return Result{Valid: false, Errors: []string{"could not validate inventory availability"}}, err
	}

	byID := make(map[string]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var errs []string
	for _, line := range lines {
		// Made-to-order lines are a service request, not a counted SKU.
		if line.Size == catalog.SizeMadeToOrder {
			continue
		}

		p, ok := byID[line.ProductID]
		if !ok {
			errs = append(errs, fmt.Sprintf("Product %s not found", line.Name))
			continue
		}

		available := StockForVariant(p, line.Size, line.Color)
		logger.FromCtx(ctx).Debug("stock check",
			zap.String("product", line.Name),
			zap.String("size", line.Size),
			zap.String("color", line.Color),
			zap.Int("available", available),
			zap.Int("requested", line.Quantity),
		)

		if available < line.Quantity {
			errs = append(errs, fmt.Sprintf(
				"Insufficient stock for %s (%s). Available: %d, Requested: %d",
				line.Name, variantLabel(line), available, line.Quantity,
			))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}, nil
}

func distinctProductIDs(lines []cart.LineItem) []string {
	var ids []string
	seen := map[string]bool{}
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}
	return ids
}

func variantLabel(line cart.LineItem) string {
	if line.Color != "" {
		return line.Size + ", " + line.Color
	}
	return line.Size
}
