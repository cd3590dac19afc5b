package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type ProductCondition string

const (
	ConditionNew         ProductCondition = "new"
	ConditionUsed        ProductCondition = "used"
	ConditionRefurbished ProductCondition = "refurbished"
)

func (c ProductCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionRefurbished:
		return true
	}
	return false
}

// StringList is stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("string list: unsupported source type %T", src)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

type Product struct {
	BaseModel
	SellerID           uuid.UUID        `gorm:"type:uuid;index;not null"`
	Title              string           `gorm:"size:200;not null"`
	Description        string           `gorm:"type:text;not null"`
	Price              int64            `gorm:"not null;index"` // minor units
	Category           string           `gorm:"size:100;not null;index"`
	Condition          ProductCondition `gorm:"size:16;not null;default:new"`
	Images             StringList       `gorm:"type:text"`
	InstallmentEnabled bool
	EscrowEnabled      bool
	IsActive           bool `gorm:"not null;default:true;index"`
}

func (Product) TableName() string {
	return "products"
}
