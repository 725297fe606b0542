package user

import (
	"fmt"

	"gorm.io/gorm"
)

// Column 描述 Users 表的一列
type Column struct {
	Name     string
	Type     string
	Default  string // 空串表示无默认值
	Nullable bool
	Primary  bool
}

var Columns = []Column{
	{Name: "id", Type: "varchar(32)", Primary: true},
	{Name: "firstName", Type: "varchar(255)"},
	{Name: "lastName", Type: "varchar(255)"},
	{Name: "isActive", Type: "boolean", Default: "true"},
	{Name: "price", Type: "decimal(12,2)", Default: "0"},
	{Name: "createdAt", Type: "timestamp"},
	{Name: "updatedAt", Type: "timestamp"},
	{Name: "deletedAt", Type: "timestamp", Nullable: true},
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserModel{}); err != nil {
		return fmt.Errorf("automigrate %s: %w", TableName, err)
	}
	return VerifySchema(db)
}

// VerifySchema 确认表和 Columns 中的每一列都存在，可空性一致
func VerifySchema(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&UserModel{}) {
		return fmt.Errorf("table %s missing", TableName)
	}
	types, err := m.ColumnTypes(&UserModel{})
	if err != nil {
		return fmt.Errorf("column types: %w", err)
	}
	byName := make(map[string]gorm.ColumnType, len(types))
	for _, ct := range types {
		byName[ct.Name()] = ct
	}
	for _, c := range Columns {
		ct, ok := byName[c.Name]
		if !ok {
			return fmt.Errorf("table %s: column %s missing", TableName, c.Name)
		}
		if c.Primary {
			continue
		}
		if nullable, ok := ct.Nullable(); ok && nullable != c.Nullable {
			return fmt.Errorf("table %s: column %s nullable=%v, want %v", TableName, c.Name, nullable, c.Nullable)
		}
	}
	return nil
}
