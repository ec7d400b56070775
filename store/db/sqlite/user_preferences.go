package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/barterhub/barterhub/store"
)

func (d *DB) UpsertUserPreferences(ctx context.Context, upsert *store.UpsertUserPreferences) (*store.UserPreferences, error) {
	now := time.Now().Unix()

	stmt := `INSERT INTO user_preferences (
			user_id, preferred_categories, disliked_categories, preferred_conditions,
			locale, country, radius_km, created_ts, updated_ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_categories = EXCLUDED.preferred_categories,
			disliked_categories = EXCLUDED.disliked_categories,
			preferred_conditions = EXCLUDED.preferred_conditions,
			locale = EXCLUDED.locale,
			country = EXCLUDED.country,
			radius_km = EXCLUDED.radius_km,
			updated_ts = EXCLUDED.updated_ts
		RETURNING user_id, preferred_categories, disliked_categories, preferred_conditions,
			locale, country, radius_km, created_ts, updated_ts`

	if err := validateUpsert(upsert); err != nil {
		return nil, err
	}

	return scanUserPreferences(d.db.QueryRowContext(ctx, stmt,
		upsert.UserID,
		marshalStringList(upsert.PreferredCategories),
		marshalStringList(upsert.DislikedCategories),
		marshalStringList(upsert.PreferredConditions),
		upsert.Locale,
		upsert.Country,
		upsert.RadiusKm,
		now,
		now,
	))
}

func (d *DB) GetUserPreferences(ctx context.Context, find *store.FindUserPreferences) (*store.UserPreferences, error) {
	if find.UserID == nil {
		return nil, fmt.Errorf("user_id is required")
	}

	query := `SELECT user_id, preferred_categories, disliked_categories, preferred_conditions,
			locale, country, radius_km, created_ts, updated_ts
		FROM user_preferences WHERE user_id = ?`

	preferences, err := scanUserPreferences(d.db.QueryRowContext(ctx, query, *find.UserID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found, return nil without error
		}
		return nil, err
	}
	return preferences, nil
}

func validateUpsert(upsert *store.UpsertUserPreferences) error {
	if upsert.UserID == 0 {
		return fmt.Errorf("user_id is required")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserPreferences(row rowScanner) (*store.UserPreferences, error) {
	result := &store.UserPreferences{}
	var preferredCategories, dislikedCategories, preferredConditions string
	var locale, country sql.NullString
	var radiusKm sql.NullInt32

	if err := row.Scan(
		&result.UserID,
		&preferredCategories,
		&dislikedCategories,
		&preferredConditions,
		&locale,
		&country,
		&radiusKm,
		&result.CreatedTs,
		&result.UpdatedTs,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan user_preferences: %w", err)
	}

	result.PreferredCategories = unmarshalStringList(preferredCategories)
	result.DislikedCategories = unmarshalStringList(dislikedCategories)
	result.PreferredConditions = unmarshalStringList(preferredConditions)
	result.Locale = locale.String
	result.Country = country.String
	if radiusKm.Valid {
		v := radiusKm.Int32
		result.RadiusKm = &v
	}

	return result, nil
}
