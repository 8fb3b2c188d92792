package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

func searchTable() domain.Table {
	return domain.Table{
		Columns: []string{
			domain.ColDate, domain.ColCard, domain.ColAmount,
			domain.ColCategory, domain.ColDescription, "Кэшбэк", "MCC",
		},
		Rows: []domain.Record{
			{
				domain.ColDate:        "31.12.2021 16:44:00",
				domain.ColCard:        "*7197",
				domain.ColAmount:      "-160,89",
				domain.ColCategory:    "Супермаркеты",
				domain.ColDescription: "Колхоз",
				"Кэшбэк":              "",
				"MCC":                 "5411",
			},
			{
				domain.ColDate:        "31.12.2021 16:42:04",
				domain.ColCard:        "*7197",
				domain.ColAmount:      "-64,00",
				domain.ColCategory:    "Супермаркеты",
				domain.ColDescription: "Колхоз",
				"Кэшбэк":              "",
				"MCC":                 "5411",
			},
			{
				domain.ColDate:        "31.12.2021 16:39:04",
				domain.ColCard:        "*7197",
				domain.ColAmount:      "-117,12",
				domain.ColCategory:    "Транспорт",
				domain.ColDescription: "Такси",
			},
		},
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("matches description case-insensitively and keeps rows verbatim", func(t *testing.T) {
		table := searchTable()
		matches, err := Search(ctx, table, "колхоз")
		require.NoError(t, err)
		require.Len(t, matches, 2)

		// Verbatim: every returned row is exactly an input row.
		assert.Equal(t, table.Rows[0], matches[0])
		assert.Equal(t, table.Rows[1], matches[1])
	})

	t.Run("matches category too", func(t *testing.T) {
		matches, err := Search(ctx, searchTable(), "транспорт")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Такси", matches[0][domain.ColDescription])
	})

	t.Run("no matches is an empty success", func(t *testing.T) {
		matches, err := Search(ctx, searchTable(), "Не существует")
		require.NoError(t, err)
		assert.NotNil(t, matches)
		assert.Empty(t, matches)
	})

	t.Run("rows with missing fields do not match on them", func(t *testing.T) {
		table := searchTable()
		table.Rows = append(table.Rows, domain.Record{domain.ColDate: "01.01.2022"})

		matches, err := Search(ctx, table, "такси")
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("missing required columns is a structured error", func(t *testing.T) {
		table := domain.Table{
			Columns: []string{domain.ColDate, domain.ColCard, domain.ColAmount},
			Rows:    []domain.Record{{domain.ColDate: "31.12.2021 16:44:00"}},
		}
		_, err := Search(ctx, table, "Колхоз")
		assert.ErrorIs(t, err, ErrSearchColumns)
		assert.EqualError(t, err, "Отсутствуют необходимые колонки в данных")
	})
}
