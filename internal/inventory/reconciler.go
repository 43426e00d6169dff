package inventory

import (
	"context"
	"errors"

	"adornia-be/internal/cart"
	"adornia-be/internal/catalog"
	"adornia-be/internal/logger"

	"go.uber.org/zap"
)

type LineStatus string

const (
	LineReconciled LineStatus = "RECONCILED"
	LineSkipped    LineStatus = "SKIPPED"
	LineFailed     LineStatus = "FAILED"
)

type ReportStatus string

const (
	ReportFull    ReportStatus = "FULL"
	ReportPartial ReportStatus = "PARTIAL"
	ReportFailed  ReportStatus = "FAILED"
)

// LineOutcome records what happened to one purchased line.
type LineOutcome struct {
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	Size      string     `json:"size,omitempty"`
	Color     string     `json:"color,omitempty"`
	Quantity  int        `json:"quantity"`
	Status    LineStatus `json:"status"`
	Reason    string     `json:"reason,omitempty"`
}

// Report is the typed outcome of a reconciliation pass. A Partial or Failed
// report is the caller's cue to raise an operational alert; the charge
// itself is never rolled back here.
type Report struct {
	OrderNumber string        `json:"orderNumber"`
	Status      ReportStatus  `json:"status"`
	Lines       []LineOutcome `json:"lines"`
}

// Reconciler decrements authoritative stock after a confirmed charge, and
// restores it on the failed-payment compensation path. Writes are optimistic
// revision-checked patches; a lost race is retried once per line.
type Reconciler struct {
	catalog catalog.Client
}

func NewReconciler(c catalog.Client) *Reconciler {
	return &Reconciler{catalog: c}
}

// Decrement reduces stock for every non-custom purchased line. One line's
// failure must not block the others: the money has already moved, so failed
// lines are reported, not propagated.
func (r *Reconciler) Decrement(ctx context.Context, orderNumber string, lines []cart.LineItem) Report {
	report := Report{OrderNumber: orderNumber}

	reconciled := 0
	failed := 0
	for _, line := range lines {
		outcome := r.applyLine(ctx, line, -line.Quantity)
		report.Lines = append(report.Lines, outcome)
		switch outcome.Status {
		case LineReconciled:
			reconciled++
		case LineFailed:
			failed++
		}
	}

	switch {
	case failed == 0:
		report.Status = ReportFull
	case reconciled == 0:
		report.Status = ReportFailed
	default:
		report.Status = ReportPartial
	}

	logger.FromCtx(ctx).Info("inventory reconciliation finished",
		zap.String("order_number", orderNumber),
		zap.String("status", string(report.Status)),
		zap.Int("reconciled", reconciled),
		zap.Int("failed", failed),
	)
	return report
}

// Restore adds quantities back after a charge turned out to have failed.
// Best-effort: failures are logged and the rest of the lines proceed.
func (r *Reconciler) Restore(ctx context.Context, lines []cart.LineItem) Report {
	report := Report{Status: ReportFull}
	failed := 0
	for _, line := range lines {
		outcome := r.applyLine(ctx, line, line.Quantity)
		report.Lines = append(report.Lines, outcome)
		if outcome.Status == LineFailed {
			failed++
		}
	}
	if failed > 0 {
		report.Status = ReportPartial
		if failed == len(lines) {
			report.Status = ReportFailed
		}
	}
	return report
}

// applyLine adjusts a single variant's quantity by delta, negative for a
// sale. Retries once when the optimistic patch loses to a concurrent write.
func (r *Reconciler) applyLine(ctx context.Context, line cart.LineItem, delta int) LineOutcome {
	outcome := LineOutcome{
		ProductID: line.ProductID,
		Name:      line.Name,
		Size:      line.Size,
		Color:     line.Color,
		Quantity:  line.Quantity,
	}

	if line.Size == catalog.SizeMadeToOrder {
		outcome.Status = LineSkipped
		outcome.Reason = "made-to-order line does not count against stock"
		return outcome
	}

	log := logger.FromCtx(ctx).With(
		zap.String("product_id", line.ProductID),
		zap.String("size", line.Size),
		zap.String("color", line.Color),
		zap.Int("delta", delta),
	)

	const attempts = 2
	for attempt := 1; attempt <= attempts; attempt++ {
		product, err := r.catalog.ProductForUpdate(ctx, line.ProductID)
		if err != nil {
			log.Error("failed to fetch product for inventory update", zap.Error(err))
			outcome.Status = LineFailed
			outcome.Reason = "product fetch failed: " + err.Error()
			return outcome
		}

		idx := findVariant(product, line.Size, line.Color)
		if idx < 0 {
			log.Error("inventory record not found")
			outcome.Status = LineFailed
			outcome.Reason = "inventory record not found"
			return outcome
		}

		current := product.Inventory[idx].Quantity
		next := current + delta
		if next < 0 {
			// Never drive stock negative. The charge stands; this line is
			// surfaced for manual follow-up.
			log.Warn("insufficient stock for decrement",
				zap.Int("current", current),
				zap.Int("requested", -delta),
			)
			outcome.Status = LineFailed
			outcome.Reason = "insufficient stock"
			return outcome
		}

		updated := make([]catalog.VariantRecord, len(product.Inventory))
		copy(updated, product.Inventory)
		updated[idx].Quantity = next

		err = r.catalog.PatchInventory(ctx, product.ID, product.Revision, updated)
		if err == nil {
			log.Info("inventory updated", zap.Int("new_quantity", next))
			outcome.Status = LineReconciled
			return outcome
		}
		if errors.Is(err, catalog.ErrRevisionConflict) && attempt < attempts {
			log.Warn("inventory patch lost a concurrent write, retrying")
			continue
		}

		log.Error("inventory patch failed", zap.Error(err))
		outcome.Status = LineFailed
		outcome.Reason = "inventory patch failed: " + err.Error()
		return outcome
	}

	outcome.Status = LineFailed
	outcome.Reason = "inventory patch kept losing concurrent writes"
	return outcome
}
