package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"battery-value/internal/api/models"
	"battery-value/internal/config"

	"github.com/gin-gonic/gin"
)

// BatteryHandler serves the battery preset catalog.
type BatteryHandler struct {
	batteryDir string
}

// NewBatteryHandler creates a new battery handler
func NewBatteryHandler() *BatteryHandler {
	dir := os.Getenv("BATTERY_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "batteries")
		} else {
			dir = "./examples/batteries"
		}
	}
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}

	return &BatteryHandler{batteryDir: dir}
}

// ListBatteries handles GET /api/v1/batteries
func (h *BatteryHandler) ListBatteries(c *gin.Context) {
	batteries := []models.BatteryInfo{}

	entries, err := os.ReadDir(h.batteryDir)
	if err != nil {
		// Missing preset dir just means an empty catalog.
		log.Printf("BatteryHandler: failed to read battery directory %s: %v", h.batteryDir, err)
		c.JSON(http.StatusOK, gin.H{"batteries": batteries})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.batteryDir, entry.Name())
		info, err := loadBatteryInfo(path, entry.Name())
		if err != nil {
			log.Printf("BatteryHandler: failed to load battery file %s: %v", path, err)
			continue // Skip invalid files
		}
		batteries = append(batteries, *info)
	}

	c.JSON(http.StatusOK, gin.H{"batteries": batteries})
}

func loadBatteryInfo(path, filename string) (*models.BatteryInfo, error) {
	batt, err := config.LoadBatteryFile(path)
	if err != nil {
		return nil, err
	}

	// Extract ID from filename (e.g., "10kwh_wall.yaml" -> "10kwh_wall").
	id := strings.TrimSuffix(filename, ".yaml")

	name := batt.Name
	if name == "" {
		name = id
	}

	return &models.BatteryInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.BatterySpecs{
			CapacityKWh: batt.CapacityKWh,
			PowerKW:     batt.PowerKW,
		},
	}, nil
}
