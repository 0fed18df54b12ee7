package servicecatalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// migrationTableColumns парсит DDL таблицы из файла миграции и возвращает
// множество объявленных колонок.
func migrationTableColumns(t *testing.T, table string) map[string]bool {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "0001_init.sql"))
	require.NoError(t, err)

	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(string(raw), marker)
	require.NotEqual(t, -1, start, "таблица %s не объявлена в миграции", table)

	body := string(raw)[start+len(marker):]
	end := strings.Index(body, ");")
	require.NotEqual(t, -1, end)

	columns := make(map[string]bool)
	for _, line := range strings.Split(body[:end], "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "--") {
			continue
		}
		columns[strings.ToLower(fields[0])] = true
	}
	return columns
}

// Репозиторий строит весь SQL из serviceColumns, поэтому расхождение
// слайса с миграцией означает ошибку undefined_column на каждом запросе.
func TestMigrationDeclaresServiceColumns(t *testing.T) {
	declared := migrationTableColumns(t, "services")

	for _, column := range serviceColumns {
		assert.Truef(t, declared[column],
			"колонка %q сканируется репозиторием, но не объявлена в migrations/0001_init.sql", column)
	}
}
