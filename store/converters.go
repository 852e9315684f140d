// File: store/converters.go
package store

import "database/sql"

// Helper functions for converting between Go pointers and sql.Null* types

// toSQLInt32 converts a Go int pointer to sql.NullInt32.
func toSQLInt32(val *int) sql.NullInt32 {
	if val == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*val), Valid: true}
}

// toSQLString converts a Go string pointer to sql.NullString.
func toSQLString(val *string) sql.NullString {
	if val == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *val, Valid: true}
}

// fromSQLInt32 converts sql.NullInt32 to a Go int pointer.
func fromSQLInt32(val sql.NullInt32) *int {
	if !val.Valid {
		return nil
	}
	i := int(val.Int32)
	return &i
}

// fromSQLString converts sql.NullString to a Go string pointer.
func fromSQLString(val sql.NullString) *string {
	if !val.Valid {
		return nil
	}
	return &val.String
}
