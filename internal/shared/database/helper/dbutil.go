package helper

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =======================
// RAW VALUE TO NULL (POSTGRES)
// =======================

// RawStringToNull treats "" as NULL.
func RawStringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// =======================
// STRING
// =======================

func StringPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func StringToNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func NullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// =======================
// UUID (Postgres Native)
// =======================

func UUIDToNull(id uuid.UUID) uuid.NullUUID {
	if id == uuid.Nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}

// =======================
// DECIMAL (Postgres Numeric)
// =======================

// Numeric columns travel as strings so no precision is lost on the way in
// or out.

// StringToDecimal returns zero for unparsable input.
func StringToDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func NullStringToDecimal(ns sql.NullString) decimal.Decimal {
	if !ns.Valid {
		return decimal.Zero
	}
	return StringToDecimal(ns.String)
}

func NullStringToDecimalPtr(ns sql.NullString) *decimal.Decimal {
	if !ns.Valid {
		return nil
	}
	d := StringToDecimal(ns.String)
	return &d
}

// DecimalPtrToNullString stores money with two decimals.
func DecimalPtrToNullString(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.StringFixed(2), Valid: true}
}

func DecimalToMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
