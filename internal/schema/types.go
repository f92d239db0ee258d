package schema

import "time"

// Snapshot is the uniform, dialect-independent view of a database taken
// once per run. Tables keep the order in which the database reported them.
type Snapshot struct {
	Dialect     string
	Tables      []TableSchema
	GeneratedAt time.Time
}

type TableSchema struct {
	Name    string
	Columns []ColumnDescriptor
}

type ColumnDescriptor struct {
	Field           string
	NativeType      string
	IsPrimaryKey    bool
	IsAutoIncrement bool
	IsNotNull       bool
	DefaultValue    *string
}

// InternalType is the UI-facing field type used by forms and the manifest.
type InternalType string

const (
	TypeString  InternalType = "string"
	TypeText    InternalType = "text"
	TypeNumber  InternalType = "number"
	TypeDate    InternalType = "date"
	TypeBoolean InternalType = "boolean"
	TypeFile    InternalType = "file"
)

func (t InternalType) Valid() bool {
	switch t {
	case TypeString, TypeText, TypeNumber, TypeDate, TypeBoolean, TypeFile:
		return true
	}
	return false
}

// StorageType names a Sequelize DataTypes member.
type StorageType string

const (
	StorageString  StorageType = "STRING"
	StorageText    StorageType = "TEXT"
	StorageInteger StorageType = "INTEGER"
	StorageDate    StorageType = "DATE"
	StorageBoolean StorageType = "BOOLEAN"
	StorageBlob    StorageType = "BLOB"
)

// DefaultStorage is the column type used when a resource is declared by hand
// rather than read from a database. Uploaded files are stored by path.
func (t InternalType) DefaultStorage() StorageType {
	switch t {
	case TypeText:
		return StorageText
	case TypeNumber:
		return StorageInteger
	case TypeDate:
		return StorageDate
	case TypeBoolean:
		return StorageBoolean
	default:
		return StorageString
	}
}

type Field struct {
	Name          string
	Type          InternalType
	StorageType   StorageType
	PrimaryKey    bool
	AutoIncrement bool
	NotNull       bool
	Default       *string
}

// ModelSpec is what every file generator consumes.
type ModelSpec struct {
	ModelName string
	TableName string
	Fields    []Field
}

// DisplayField is the field listed on index pages. It is the first field,
// or "id" when the model has none.
func (m ModelSpec) DisplayField() string {
	if len(m.Fields) == 0 {
		return "id"
	}
	return m.Fields[0].Name
}

// FormFields are the fields a user fills in; auto-increment keys are left to the database.
func (m ModelSpec) FormFields() []Field {
	fields := make([]Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.AutoIncrement {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}
