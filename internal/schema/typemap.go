package schema

import (
	"strings"

	"go.uber.org/zap"
)

type typeRule struct {
	match    func(native string) bool
	internal InternalType
	storage  StorageType
}

func contains(s string) func(string) bool {
	return func(native string) bool { return strings.Contains(native, s) }
}

func equals(s string) func(string) bool {
	return func(native string) bool { return native == s }
}

func prefix(s string) func(string) bool {
	return func(native string) bool { return strings.HasPrefix(native, s) }
}

// Evaluated top to bottom against the upper-cased native type; the first match wins.
var typeRules = []typeRule{
	{match: contains("VARCHAR"), internal: TypeString, storage: StorageString},
	{match: equals("TEXT"), internal: TypeText, storage: StorageText},
	{match: contains("INTEGER"), internal: TypeNumber, storage: StorageInteger},
	{match: contains("DATE"), internal: TypeDate, storage: StorageDate},
	{match: equals("BOOLEAN"), internal: TypeBoolean, storage: StorageBoolean},
	{match: prefix("TINYINT"), internal: TypeBoolean, storage: StorageBoolean},
	{match: equals("BLOB"), internal: TypeFile, storage: StorageBlob},
}

// TypeMapper maps native database column types to internal and storage types
type TypeMapper struct {
	log *zap.Logger
}

// NewTypeMapper creates a TypeMapper. Unrecognized types are reported on log.
func NewTypeMapper(log *zap.Logger) *TypeMapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &TypeMapper{log: log}
}

func (tm *TypeMapper) lookup(native string) (InternalType, StorageType) {
	normalized := strings.ToUpper(strings.TrimSpace(native))
	for _, rule := range typeRules {
		if rule.match(normalized) {
			return rule.internal, rule.storage
		}
	}
	tm.log.Warn("unrecognized column type, falling back to string", zap.String("native_type", native))
	return TypeString, StorageString
}

func (tm *TypeMapper) MapToInternalType(native string) InternalType {
	internal, _ := tm.lookup(native)
	return internal
}

func (tm *TypeMapper) MapToStorageType(native string) StorageType {
	_, storage := tm.lookup(native)
	return storage
}

// Field converts a column descriptor into a model field.
func (tm *TypeMapper) Field(col ColumnDescriptor) Field {
	internal, storage := tm.lookup(col.NativeType)
	return Field{
		Name:          col.Field,
		Type:          internal,
		StorageType:   storage,
		PrimaryKey:    col.IsPrimaryKey,
		AutoIncrement: col.IsAutoIncrement,
		NotNull:       col.IsNotNull,
		Default:       col.DefaultValue,
	}
}
