// Package receipt renders order receipts as PDF files and caches them on
// disk. A receipt for a given order is rendered at most once; repeated
// downloads serve the cached file.
package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/go-pdf/fpdf"
)

// Generator renders receipt PDFs into a dedicated directory.
type Generator struct {
	dir string
}

// NewGenerator creates the receipt directory if needed.
func NewGenerator(dir string) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt dir: %w", err)
	}

	return &Generator{dir: dir}, nil
}

// Path returns the file path a receipt for the given order lives at,
// whether or not it has been rendered yet.
func (g *Generator) Path(orderID kernel.UUID) string {
	return filepath.Join(g.dir, fmt.Sprintf("receipt_%s.pdf", orderID))
}

// Generate renders the receipt for the order unless a cached file already
// exists, and returns the file path.
func (g *Generator) Generate(o *order.Order) (string, error) {
	path := g.Path(o.ID())
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "Laundry Service Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Order ID:", o.ID().String())
	line("Item:", o.ItemType())
	line("Quantity:", fmt.Sprintf("%d", o.Quantity()))
	line("Hostel:", o.HostelName())
	line("Room:", o.RoomNumber())
	line("Pickup Slot:", o.PickupTimeSlot())
	line("Status:", o.Status().String())
	line("Total Price:", fmt.Sprintf("Rs %.2f", o.TotalPrice()))
	line("Date:", o.CreatedAt().Format("2006-01-02 15:04"))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}

	return path, nil
}

// Prune removes cached receipt files older than the given age and returns
// how many were deleted. Files that vanish mid-walk are skipped.
func (g *Generator) Prune(olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return 0, fmt.Errorf("read receipt dir: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".pdf" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(g.dir, entry.Name())); err == nil {
				removed++
			}
		}
	}

	return removed, nil
}

// Dir returns the directory receipts are rendered into, for static serving.
func (g *Generator) Dir() string {
	return g.dir
}
