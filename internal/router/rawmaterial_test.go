package router_test

import (
	"net/http"
	"regexp"
	"testing"

	"girvi-backend/internal/database"
	"girvi-backend/internal/models"
)

func TestCreateRawMaterial(t *testing.T) {
	r := setupTest(t)
	admin, token := newAdmin(t)
	firm := newFirm(t, admin)

	w := doForm(t, r, "POST", "/api/raw-materials", map[string]string{
		"name":          "Silver Bar",
		"material_type": "silver",
		"weight":        "500",
		"firm_id":       itoa(firm.ID),
	}, token)
	wantStatus(t, w, http.StatusCreated)

	var material models.RawMaterial
	if err := database.DB.First(&material).Error; err != nil {
		t.Fatalf("raw material not persisted: %v", err)
	}
	if ok, _ := regexp.MatchString(`^RAW-\d+-[0-9A-Z]+$`, material.Code); !ok {
		t.Errorf("code %q does not match RAW-<digits>-<alnum>", material.Code)
	}

	// Firm reference must resolve
	w = doForm(t, r, "POST", "/api/raw-materials", map[string]string{
		"name":          "Gold Bar",
		"material_type": "gold",
		"weight":        "100",
		"firm_id":       "9999",
	}, token)
	wantStatus(t, w, http.StatusNotFound)
}

func TestRestock(t *testing.T) {
	r := setupTest(t)
	admin, token := newAdmin(t)
	firm := newFirm(t, admin)

	material := models.RawMaterial{
		Name: "Gold Granules", MaterialType: "gold", Code: "RAW-1-TEST01",
		Weight: 10, FirmID: firm.ID,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		t.Fatalf("seed raw material: %v", err)
	}

	// Delta of 2.5 increases weight by exactly 2.5
	w := doJSON(t, r, "PUT", "/api/raw-materials/"+itoa(material.ID)+"/restock",
		map[string]any{"weight": 2.5}, token)
	wantStatus(t, w, http.StatusOK)

	var reloaded models.RawMaterial
	if err := database.DB.First(&reloaded, material.ID).Error; err != nil {
		t.Fatalf("reload material: %v", err)
	}
	if reloaded.Weight != 12.5 {
		t.Errorf("weight after restock = %v, want 12.5", reloaded.Weight)
	}

	// Unknown id is NotFound
	w = doJSON(t, r, "PUT", "/api/raw-materials/9999/restock",
		map[string]any{"weight": 1.0}, token)
	wantStatus(t, w, http.StatusNotFound)

	// Non-positive delta is a validation failure, weight untouched
	for _, bad := range []float64{0, -3} {
		w = doJSON(t, r, "PUT", "/api/raw-materials/"+itoa(material.ID)+"/restock",
			map[string]any{"weight": bad}, token)
		wantStatus(t, w, http.StatusBadRequest)
	}
	database.DB.First(&reloaded, material.ID)
	if reloaded.Weight != 12.5 {
		t.Errorf("weight changed by rejected restock: %v", reloaded.Weight)
	}
}
