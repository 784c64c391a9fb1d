package dictionary

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/rs/zerolog/log"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
	"github.com/clinscribe/transcript-correction/backend/internal/domain/repositories"
	"github.com/clinscribe/transcript-correction/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/clinscribe/transcript-correction/backend/pkg/errors"
)

// PostgresAdapter loads the correction dictionary from a Postgres table with
// id, incorrect and correct columns. Rows are read in id order so the
// dictionary's key order matches insertion order, the same guarantee the CSV
// loader gives for file order.
type PostgresAdapter struct {
	client *postgres.Client
	db     *goqu.Database
	table  string
}

// NewPostgresAdapter creates a Postgres-backed dictionary loader.
func NewPostgresAdapter(client *postgres.Client, table string) repositories.DictionaryRepository {
	return &PostgresAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
		table:  table,
	}
}

// Load reads all correction rows into a dictionary.
func (a *PostgresAdapter) Load(ctx context.Context) (*entities.CorrectionDictionary, error) {
	query, args, err := a.db.
		Select("incorrect", "correct").
		From(a.table).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build dictionary query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load correction dictionary", err)
	}
	defer rows.Close()

	dict := entities.NewCorrectionDictionary()
	for rows.Next() {
		var incorrect, correct string
		if err := rows.Scan(&incorrect, &correct); err != nil {
			return nil, apperrors.NewInternalError("failed to scan correction row", err)
		}
		dict.Add(incorrect, correct)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read correction rows", err)
	}

	log.Info().Str("table", a.table).Int("entries", dict.Len()).Msg("Loaded correction dictionary from Postgres")
	return dict, nil
}
