package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	keyPrimary         = "PRI"
	extraAutoIncrement = "auto_increment"
	extraNotNull       = "NOT NULL"
	extraDefault       = "DEFAULT "
)

// columnRecord is the persisted shape of a column in tables.json.
type columnRecord struct {
	Field string `json:"Field"`
	Type  string `json:"Type"`
	Key   string `json:"Key"`
	Extra string `json:"Extra"`
}

func newColumnRecord(col ColumnDescriptor) columnRecord {
	rec := columnRecord{Field: col.Field, Type: col.NativeType}
	if col.IsPrimaryKey {
		rec.Key = keyPrimary
	}

	var extra []string
	if col.IsAutoIncrement {
		extra = append(extra, extraAutoIncrement)
	}
	if col.IsNotNull {
		extra = append(extra, extraNotNull)
	}
	// DEFAULT must stay last: its value runs to the end of the string.
	if col.DefaultValue != nil {
		extra = append(extra, extraDefault+*col.DefaultValue)
	}
	rec.Extra = strings.Join(extra, " ")
	return rec
}

func (rec columnRecord) descriptor() ColumnDescriptor {
	col := ColumnDescriptor{
		Field:        rec.Field,
		NativeType:   rec.Type,
		IsPrimaryKey: rec.Key == keyPrimary,
	}

	flags := rec.Extra
	if i := strings.Index(flags, extraDefault); i >= 0 {
		value := flags[i+len(extraDefault):]
		col.DefaultValue = &value
		flags = flags[:i]
	}
	col.IsAutoIncrement = strings.Contains(flags, extraAutoIncrement)
	col.IsNotNull = strings.Contains(flags, extraNotNull)
	return col
}

// MarshalJSON writes the snapshot as an object keyed by table name,
// preserving discovery order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, table := range s.Tables {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(table.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		records := make([]columnRecord, 0, len(table.Columns))
		for _, col := range table.Columns {
			records = append(records, newColumnRecord(col))
		}
		cols, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("failed to encode table %s: %w", table.Name, err)
		}
		buf.Write(cols)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a document produced by MarshalJSON, keeping key order.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("snapshot must be a JSON object, got %v", tok)
	}

	tables := []TableSchema{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in snapshot", tok)
		}

		var records []columnRecord
		if err := dec.Decode(&records); err != nil {
			return fmt.Errorf("failed to decode table %s: %w", name, err)
		}

		table := TableSchema{Name: name, Columns: make([]ColumnDescriptor, 0, len(records))}
		for _, rec := range records {
			table.Columns = append(table.Columns, rec.descriptor())
		}
		tables = append(tables, table)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	s.Tables = tables
	return nil
}
