package georepo

import (
	"github.com/google/uuid"
)

type NationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

func (NationDTO) TableName() string {
	return "nations"
}

type CityDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null;index"`
	Postcode string    `gorm:"type:varchar(32)"`
	NationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Nation   NationDTO `gorm:"foreignKey:NationID;constraint:OnDelete:RESTRICT"`
}

func (CityDTO) TableName() string {
	return "cities"
}
