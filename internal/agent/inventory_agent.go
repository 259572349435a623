package agent

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// InventoryAgent answers stock questions for doctors: fuzzy lookups, delta
// updates, and low-stock reports against the live inventory.
type InventoryAgent struct {
	items   ports.InventoryRepository
	doctors ports.DoctorRepository
}

func NewInventoryAgent(items ports.InventoryRepository, doctors ports.DoctorRepository) *InventoryAgent {
	return &InventoryAgent{items: items, doctors: doctors}
}

// quantityPattern captures phrases like "used 5", "add 20", "take 3".
var quantityPattern = regexp.MustCompile(`\b(used|use|add|added|take|took|remove|consumed)\s+(\d+)\b`)

func (a *InventoryAgent) Handle(ctx context.Context, in ChatInput) (*ChatReply, error) {
	if in.Role != domain.RoleDoctor {
		return &ChatReply{
			Response:    "Inventory is only available to doctors.",
			ActionTaken: "refused",
		}, nil
	}

	doctor, err := a.doctors.FindByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(in.Message)

	if strings.Contains(query, "low") || strings.Contains(query, "shortage") || strings.Contains(query, "alert") {
		return a.lowStockReport(ctx, doctor.HospitalID)
	}

	if item := a.lookup(ctx, doctor.HospitalID, query); item != nil {
		if delta, ok := parseDelta(query); ok {
			return a.adjust(ctx, item, delta)
		}
		note := ""
		if item.LowStock() {
			note = " That is at or below the reorder threshold."
		}
		return &ChatReply{
			Response:    fmt.Sprintf("We have %d %s of %s in stock.%s", item.Quantity, unitOrDefault(item.Unit), item.Name, note),
			ActionTaken: "stock_checked",
			Data:        item,
		}, nil
	}

	items, err := a.items.ListByHospital(ctx, doctor.HospitalID)
	if err != nil {
		return nil, err
	}
	return &ChatReply{
		Response:    fmt.Sprintf("Your inventory has %d items. Ask about one by name, or say 'low stock' for a shortage report.", len(items)),
		ActionTaken: "inventory_listed",
		Data:        items,
	}, nil
}

// lookup scans the message for a known item name, word by word.
func (a *InventoryAgent) lookup(ctx context.Context, hospitalID, query string) *domain.InventoryItem {
	for _, word := range strings.Fields(query) {
		word = strings.Trim(word, ".,!?")
		if len(word) < 4 {
			continue
		}
		item, err := a.items.SearchByName(ctx, hospitalID, word)
		if err == nil {
			return item
		}
		if !errors.Is(err, domain.ErrItemNotFound) {
			return nil
		}
	}
	return nil
}

func (a *InventoryAgent) adjust(ctx context.Context, item *domain.InventoryItem, delta int) (*ChatReply, error) {
	updated, err := a.items.AdjustQuantity(ctx, item.ID, delta)
	if errors.Is(err, domain.ErrInsufficientStock) {
		return &ChatReply{
			Response:    fmt.Sprintf("Cannot deduct that much: only %d %s of %s left.", item.Quantity, unitOrDefault(item.Unit), item.Name),
			ActionTaken: "insufficient_stock",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	note := ""
	if updated.LowStock() {
		note = " Stock is now at or below the reorder threshold."
	}
	return &ChatReply{
		Response:    fmt.Sprintf("Updated %s: %d %s remaining.%s", updated.Name, updated.Quantity, unitOrDefault(updated.Unit), note),
		ActionTaken: "stock_adjusted",
		Data:        updated,
	}, nil
}

func (a *InventoryAgent) lowStockReport(ctx context.Context, hospitalID string) (*ChatReply, error) {
	low, err := a.items.ListLowStock(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if len(low) == 0 {
		return &ChatReply{
			Response:    "All items are above their reorder thresholds.",
			ActionTaken: "low_stock_report",
		}, nil
	}

	lines := make([]string, 0, len(low))
	for _, item := range low {
		lines = append(lines, fmt.Sprintf("%s (%d left, threshold %d)", item.Name, item.Quantity, item.Threshold))
	}
	return &ChatReply{
		Response:    "Low stock: " + strings.Join(lines, "; ") + ".",
		ActionTaken: "low_stock_report",
		Data:        low,
	}, nil
}

// parseDelta extracts a signed quantity change from the message. Consumption
// verbs produce a negative delta.
func parseDelta(query string) (int, bool) {
	m := quantityPattern.FindStringSubmatch(query)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	switch m[1] {
	case "add", "added":
		return n, true
	default:
		return -n, true
	}
}

func unitOrDefault(unit string) string {
	if unit == "" {
		return "units"
	}
	return unit
}
