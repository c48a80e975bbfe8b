package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type index struct {
	table   string
	name    string
	columns string
	unique  bool

	// mysqlColumns replaces columns on MySQL, whose index keys are capped
	// at 3072 bytes.
	mysqlColumns string
}

var indexes = []index{
	// Label names may be up to 1000 characters, too long for a full MySQL key
	{table: "labels", name: "idx_labels_name", columns: "name", unique: true, mysqlColumns: "name(191)"},

	// Reverse lookup for "which tasks carry this label"
	{table: "task_labels", name: "idx_task_labels_label_id", columns: "label_id"},

	// Default list ordering
	{table: "tasks", name: "idx_tasks_created_at", columns: "created_at"},
}

// AddIndexes adds the indexes that AutoMigrate does not derive from struct
// tags. Existing indexes are left alone.
func AddIndexes(db *gorm.DB, log *zap.Logger) error {
	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			log.Debug("index already exists, skipping", zap.String("index", idx.name))
			continue
		}

		columns := idx.columns
		if db.Dialector.Name() == "mysql" && idx.mysqlColumns != "" {
			columns = idx.mysqlColumns
		}
		kind := "INDEX"
		if idx.unique {
			kind = "UNIQUE INDEX"
		}

		sql := fmt.Sprintf("CREATE %s %s ON %s (%s)", kind, idx.name, idx.table, columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info("created index",
			zap.String("index", idx.name),
			zap.String("table", idx.table),
			zap.String("columns", columns))
	}

	return nil
}
