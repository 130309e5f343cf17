package utils

import (
	"database/sql"
	"fmt"
	"reflect"
)

// ScanStructByDBTags scans a row into dest by walking its `db`-tagged fields.
// Field order must match the table's column order, queries use SELECT * /
// RETURNING * against tables whose columns were declared in struct order.
func ScanStructByDBTags(row *sql.Row, dest any) error {
	targets, err := scanTargets(dest)
	if err != nil {
		return err
	}
	return row.Scan(targets...)
}

// ScanStructByDBTagsForRows is the *sql.Rows variant of ScanStructByDBTags.
func ScanStructByDBTagsForRows(rows *sql.Rows, dest any) error {
	targets, err := scanTargets(dest)
	if err != nil {
		return err
	}
	return rows.Scan(targets...)
}

func scanTargets(dest any) ([]any, error) {
	value := reflect.ValueOf(dest)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("dest must be a pointer to a struct, got %T", dest)
	}

	elem := value.Elem()
	elemType := elem.Type()

	targets := make([]any, 0, elem.NumField())
	for i := 0; i < elem.NumField(); i++ {
		tag := elemType.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		targets = append(targets, elem.Field(i).Addr().Interface())
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no db-tagged fields on %T", dest)
	}

	return targets, nil
}
