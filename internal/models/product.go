package models

import "github.com/lib/pq"

type Product struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Description       string         `gorm:"type:text;not null" json:"description"`
	CorrectContainer  string         `gorm:"type:text;not null" json:"correctContainer"`
	CorrectPictograms pq.StringArray `gorm:"type:text[];not null" json:"correctPictograms"`
}

const (
	ContainerGlass   = "glass"
	ContainerPlastic = "plastic"
)

// GHS pictogram identifiers a product label can carry.
const (
	PictogramFlammable     = "flammable"
	PictogramCorrosive     = "corrosive"
	PictogramToxic         = "toxic"
	PictogramIrritant      = "irritant"
	PictogramExplosive     = "explosive"
	PictogramOxidizing     = "oxidizing"
	PictogramCompressedGas = "compressed_gas"
	PictogramHealthHazard  = "health_hazard"
	PictogramEnvironmental = "environmental"
)

var Pictograms = []string{
	PictogramFlammable,
	PictogramCorrosive,
	PictogramToxic,
	PictogramIrritant,
	PictogramExplosive,
	PictogramOxidizing,
	PictogramCompressedGas,
	PictogramHealthHazard,
	PictogramEnvironmental,
}

func IsValidContainer(c string) bool {
	return c == ContainerGlass || c == ContainerPlastic
}

func IsValidPictogram(id string) bool {
	for _, p := range Pictograms {
		if p == id {
			return true
		}
	}
	return false
}
