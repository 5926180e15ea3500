// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BelegRecord is the predicate function for belegrecord builders.
type BelegRecord func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// VendorPattern is the predicate function for vendorpattern builders.
type VendorPattern func(*sql.Selector)
