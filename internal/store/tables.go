// internal/store/tables.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"matrimony-matcher/internal/common/errors"
	"matrimony-matcher/internal/common/logger"
	"matrimony-matcher/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// Table document names inside the tables directory.
const (
	TableMaleUthamam    = "male_uthamam"
	TableMaleMathimam   = "male_mathimam"
	TableFemaleUthamam  = "female_uthamam"
	TableFemaleMathimam = "female_mathimam"
)

// TableLoader reads compatibility table documents from a directory. Any
// failure yields an empty table so one broken document degrades the result
// set instead of failing every request.
type TableLoader struct {
	dir    string
	logger logger.Logger
}

func NewTableLoader(dir string, log logger.Logger) *TableLoader {
	return &TableLoader{
		dir:    dir,
		logger: log.WithFields(map[string]interface{}{"component": "table-loader"}),
	}
}

// Load reads <dir>/<name>.json into a CompatibilityTable.
func (l *TableLoader) Load(name string) models.CompatibilityTable {
	table, err := l.load(name)
	if err != nil {
		l.logger.Warn("compatibility table degraded to empty", map[string]interface{}{
			"table": name,
			"error": errors.NewTableLoadError(name, err).Error(),
		})
		return models.CompatibilityTable{Name: name}
	}
	return table
}

// LoadSet assembles the four tables the resolver needs.
func (l *TableLoader) LoadSet() models.TableSet {
	return models.TableSet{
		MaleUthamam:    l.Load(TableMaleUthamam),
		MaleMathimam:   l.Load(TableMaleMathimam),
		FemaleUthamam:  l.Load(TableFemaleUthamam),
		FemaleMathimam: l.Load(TableFemaleMathimam),
	}
}

func (l *TableLoader) load(name string) (models.CompatibilityTable, error) {
	path := filepath.Join(l.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return models.CompatibilityTable{}, fmt.Errorf("read table: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(tableDocumentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return models.CompatibilityTable{}, fmt.Errorf("validate table: %w", err)
	}
	if !result.Valid() {
		return models.CompatibilityTable{}, fmt.Errorf("table document rejected by schema: %s", firstSchemaError(result))
	}

	var table models.CompatibilityTable
	if err := json.Unmarshal(data, &table); err != nil {
		return models.CompatibilityTable{}, fmt.Errorf("decode table: %w", err)
	}
	if table.Name == "" {
		table.Name = name
	}

	l.logger.Debug("compatibility table loaded", map[string]interface{}{
		"table": name,
		"rows":  len(table.Rows),
	})
	return table, nil
}
