package router_test

import (
	"net/http"
	"regexp"
	"testing"

	"girvi-backend/internal/database"
	"girvi-backend/internal/models"
)

func TestCreateStockComputesTotalValue(t *testing.T) {
	r := setupTest(t)
	admin, token := newAdmin(t)
	firm := newFirm(t, admin)
	category := newCategory(t)

	w := doForm(t, r, "POST", "/api/stock", map[string]string{
		"name":          "Gold Ring",
		"material_type": "gold",
		"weight":        "12.5",
		"category_id":   itoa(category.ID),
		"firm_id":       itoa(firm.ID),
		"quantity":      "3",
		"price":         "1000",
		"making_charge": "150",
	}, token)
	wantStatus(t, w, http.StatusCreated)

	var stock models.Stock
	if err := database.DB.First(&stock).Error; err != nil {
		t.Fatalf("stock not persisted: %v", err)
	}
	if stock.TotalValue != 1150 {
		t.Errorf("total value = %v, want 1150", stock.TotalValue)
	}
	if ok, _ := regexp.MatchString(`^STOCK-\d+-[0-9A-Z]+$`, stock.StockCode); !ok {
		t.Errorf("stock code %q does not match STOCK-<digits>-<alnum>", stock.StockCode)
	}
}

func TestCreateStockRejectsBadInput(t *testing.T) {
	r := setupTest(t)
	admin, token := newAdmin(t)
	firm := newFirm(t, admin)
	category := newCategory(t)

	// Unknown material type fails validation
	w := doForm(t, r, "POST", "/api/stock", map[string]string{
		"name":          "Copper Ring",
		"material_type": "copper",
		"weight":        "5",
		"category_id":   itoa(category.ID),
		"firm_id":       itoa(firm.ID),
		"quantity":      "1",
		"price":         "100",
	}, token)
	wantStatus(t, w, http.StatusBadRequest)

	// Dangling category reference
	w = doForm(t, r, "POST", "/api/stock", map[string]string{
		"name":          "Gold Ring",
		"material_type": "gold",
		"weight":        "5",
		"category_id":   "9999",
		"firm_id":       itoa(firm.ID),
		"quantity":      "1",
		"price":         "100",
	}, token)
	wantStatus(t, w, http.StatusNotFound)

	// Missing required fields
	w = doForm(t, r, "POST", "/api/stock", map[string]string{"name": "x"}, token)
	wantStatus(t, w, http.StatusBadRequest)
}

func TestStockSoftDeleteAndLookups(t *testing.T) {
	r := setupTest(t)
	admin, token := newAdmin(t)
	firm := newFirm(t, admin)
	category := newCategory(t)

	for _, mt := range []string{"gold", "silver"} {
		w := doForm(t, r, "POST", "/api/stock", map[string]string{
			"name":          mt + " item",
			"material_type": mt,
			"weight":        "4",
			"category_id":   itoa(category.ID),
			"firm_id":       itoa(firm.ID),
			"quantity":      "1",
			"price":         "500",
			"making_charge": "50",
		}, token)
		wantStatus(t, w, http.StatusCreated)
	}

	w := doJSON(t, r, "GET", "/api/stock/type/gold", nil, token)
	wantStatus(t, w, http.StatusOK)
	body := decode(t, w)
	if items, _ := body["stock"].([]any); len(items) != 1 {
		t.Fatalf("stock by type gold = %d items, want 1", len(items))
	}

	w = doJSON(t, r, "GET", "/api/stock/type/bronze", nil, token)
	wantStatus(t, w, http.StatusBadRequest)

	var gold models.Stock
	if err := database.DB.Where("material_type = ?", "gold").First(&gold).Error; err != nil {
		t.Fatalf("seeded gold stock missing: %v", err)
	}

	w = doJSON(t, r, "DELETE", "/api/stock/"+itoa(gold.ID), nil, token)
	wantStatus(t, w, http.StatusOK)

	// Gone from the active listing, still in the store
	w = doJSON(t, r, "GET", "/api/stock", nil, token)
	wantStatus(t, w, http.StatusOK)
	body = decode(t, w)
	if items, _ := body["stock"].([]any); len(items) != 1 {
		t.Fatalf("active stock = %d items after delete, want 1", len(items))
	}

	var raw models.Stock
	if err := database.DB.Unscoped().First(&raw, gold.ID).Error; err != nil {
		t.Fatalf("soft-deleted stock gone from store: %v", err)
	}
	if !raw.RemoveAt.Valid {
		t.Fatal("remove_at not set on soft-deleted stock")
	}

	// Removing it twice is a NotFound
	w = doJSON(t, r, "DELETE", "/api/stock/"+itoa(gold.ID), nil, token)
	wantStatus(t, w, http.StatusNotFound)
}
