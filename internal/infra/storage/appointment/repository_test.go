package appointment

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

// Репозиторий строит весь SQL из appointmentColumns, поэтому расхождение
// слайса с миграцией означает ошибку undefined_column на каждом запросе.
func TestMigrationDeclaresAppointmentColumns(t *testing.T) {
	declared := migrationTableColumns(t, "appointments")

	for _, column := range appointmentColumns {
		assert.Truef(t, declared[column],
			"колонка %q сканируется репозиторием, но не объявлена в migrations/0001_init.sql", column)
	}
}

func TestMigrationKeepsActiveSlotUniqueIndex(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "0001_init.sql"))
	require.NoError(t, err)

	start := strings.Index(string(raw), "CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_business_start_active")
	require.NotEqual(t, -1, start, "частичный уникальный индекс по активным слотам не объявлен")

	index := string(raw)[start:]
	if end := strings.Index(index, ";"); end != -1 {
		index = index[:end]
	}

	// Единственный арбитр конфликта слотов: пара (business_id, start_at)
	// уникальна только среди активных бронирований
	assert.Contains(t, index, "(business_id, start_at)")
	assert.Contains(t, index, "WHERE status = 'scheduled'")
}
