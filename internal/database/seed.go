package database

import (
	"log"

	"github.com/RCnetmiles/Lab-Label/internal/models"

	"gorm.io/gorm"
)

// seedProducts is the fixed requisition catalog. Only inserted when the
// table is empty, so restarts never duplicate it.
var seedProducts = []models.Product{
	{
		Name:              "Ethanol 99%",
		Description:       "REQ-001: Clear, colorless liquid. Highly volatile. Flash point 13°C. Causes severe eye irritation. Handle with care away from heat sources.",
		CorrectContainer:  models.ContainerGlass,
		CorrectPictograms: []string{models.PictogramFlammable, models.PictogramIrritant},
	},
	{
		Name:              "Sulfuric Acid",
		Description:       "REQ-002: Oily liquid. Extremely corrosive to skin and metals. Reacts violently with water. Use high-density polyethylene or glass.",
		CorrectContainer:  models.ContainerGlass,
		CorrectPictograms: []string{models.PictogramCorrosive},
	},
	{
		Name:              "Sodium Hydroxide Pellets",
		Description:       "REQ-003: White solid pellets. Deliquescent. Causes severe skin burns and eye damage. Hygroscopic.",
		CorrectContainer:  models.ContainerPlastic,
		CorrectPictograms: []string{models.PictogramCorrosive},
	},
	{
		Name:              "Benzene",
		Description:       "REQ-004: Colorless liquid with sweet odor. Carcinogenic and mutagenic. Highly flammable. Toxic to aquatic life.",
		CorrectContainer:  models.ContainerGlass,
		CorrectPictograms: []string{models.PictogramFlammable, models.PictogramHealthHazard, models.PictogramToxic},
	},
	{
		Name:              "Distilled Water",
		Description:       "REQ-005: Purified water. Non-hazardous. Used for solvents and cleaning.",
		CorrectContainer:  models.ContainerPlastic,
		CorrectPictograms: []string{},
	},
	{
		Name:              "Acetone",
		Description:       "REQ-006: Solvent. Highly flammable liquid and vapor. Causes serious eye irritation. May cause drowsiness or dizziness.",
		CorrectContainer:  models.ContainerGlass,
		CorrectPictograms: []string{models.PictogramFlammable, models.PictogramIrritant},
	},
	{
		Name:              "Hydrochloric Acid",
		Description:       "REQ-007: Aqueous solution of hydrogen chloride. Corrosive to respiratory tract. Causes severe burns.",
		CorrectContainer:  models.ContainerGlass,
		CorrectPictograms: []string{models.PictogramCorrosive, models.PictogramIrritant},
	},
}

func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count products: %v", err)
	}
	if count > 0 {
		return
	}

	for i := range seedProducts {
		if err := db.Create(&seedProducts[i]).Error; err != nil {
			log.Fatalf("failed to seed product %q: %v", seedProducts[i].Name, err)
		}
	}
	log.Printf("seeded %d products", len(seedProducts))
}
