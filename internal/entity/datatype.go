package entity

import (
	"time"

	"github.com/google/uuid"
)

// ValueStorageType is the database column type a data type stores its values in.
type ValueStorageType string

const (
	StorageNvarchar ValueStorageType = "Nvarchar"
	StorageNtext    ValueStorageType = "Ntext"
	StorageInteger  ValueStorageType = "Integer"
	StorageDecimal  ValueStorageType = "Decimal"
	StorageDate     ValueStorageType = "Date"
)

// DataType binds a property editor to a persisted configuration.
type DataType struct {
	ID            int
	Key           uuid.UUID
	Name          string
	EditorAlias   string
	DatabaseType  ValueStorageType
	Configuration map[string]any
	ParentID      int
	Path          string
	Level         int
	SortOrder     int
	Trashed       bool
	CreateDate    time.Time
	UpdateDate    time.Time
}

// Language is a culture the installation is configured for.
type Language struct {
	ID                 int
	IsoCode            string
	CultureName        string
	IsDefault          bool
	IsMandatory        bool
	FallbackLanguageID *int
}
