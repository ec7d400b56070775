package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/barterhub/barterhub/store"
)

func (d *DB) CreateItem(ctx context.Context, create *store.Item) (*store.Item, error) {
	fields := []string{"uid", "owner_id", "title", "description", "category", "condition", "tags", "photos", "status", "popularity_score"}
	placeholderValues := []any{
		create.UID, create.OwnerID, create.Title, create.Description, create.Category, create.Condition,
		marshalStringList(create.Tags), marshalStringList(create.Photos), create.Status.String(), create.PopularityScore,
	}

	stmt := `INSERT INTO item (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return create, nil
}

func (d *DB) ListItems(ctx context.Context, find *store.FindItem) ([]*store.Item, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "item.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "item.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.OwnerID; v != nil {
		where, args = append(where, "item.owner_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.ExcludeOwnerID; v != nil {
		where, args = append(where, "item.owner_id != "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Status; v != nil {
		where, args = append(where, "item.status = "+placeholder(len(args)+1)), append(args, v.String())
	}
	if len(find.Categories) > 0 {
		list := []string{}
		for _, category := range find.Categories {
			list, args = append(list, placeholder(len(args)+1)), append(args, category)
		}
		where = append(where, "item.category IN ("+strings.Join(list, ", ")+")")
	}
	if len(find.ExcludeCategories) > 0 {
		list := []string{}
		for _, category := range find.ExcludeCategories {
			list, args = append(list, placeholder(len(args)+1)), append(args, category)
		}
		where = append(where, "item.category NOT IN ("+strings.Join(list, ", ")+")")
	}
	if len(find.Conditions) > 0 {
		list := []string{}
		for _, condition := range find.Conditions {
			list, args = append(list, placeholder(len(args)+1)), append(args, condition)
		}
		where = append(where, "item.condition IN ("+strings.Join(list, ", ")+")")
	}

	orderBy := "ORDER BY item.created_ts DESC"
	if find.OrderByPopularityDesc {
		orderBy = "ORDER BY item.popularity_score DESC, item.created_ts DESC"
	}

	query := `
		SELECT
			item.id, item.uid, item.owner_id, item.created_ts, item.updated_ts,
			item.title, item.description, item.category, item.condition,
			item.tags, item.photos, item.status, item.popularity_score,
			user.uid, user.display_name, user.country
		FROM item
		LEFT JOIN user ON item.owner_id = user.id
		WHERE ` + strings.Join(where, " AND ") + ` ` + orderBy

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Item, 0)
	for rows.Next() {
		var item store.Item
		var tags, photos, status string
		if err := rows.Scan(
			&item.ID,
			&item.UID,
			&item.OwnerID,
			&item.CreatedTs,
			&item.UpdatedTs,
			&item.Title,
			&item.Description,
			&item.Category,
			&item.Condition,
			&tags,
			&photos,
			&status,
			&item.PopularityScore,
			&item.OwnerUID,
			&item.OwnerDisplayName,
			&item.OwnerCountry,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Tags = unmarshalStringList(tags)
		item.Photos = unmarshalStringList(photos)
		item.Status = store.ItemStatus(status)
		list = append(list, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateItem(ctx context.Context, update *store.UpdateItem) (*store.Item, error) {
	set, args := []string{}, []any{}

	if v := update.UpdatedTs; v != nil {
		set, args = append(set, "updated_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Title; v != nil {
		set, args = append(set, "title = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Description; v != nil {
		set, args = append(set, "description = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Category; v != nil {
		set, args = append(set, "category = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Condition; v != nil {
		set, args = append(set, "condition = "+placeholder(len(args)+1)), append(args, *v)
	}
	if update.Tags != nil {
		set, args = append(set, "tags = "+placeholder(len(args)+1)), append(args, marshalStringList(update.Tags))
	}
	if update.Photos != nil {
		set, args = append(set, "photos = "+placeholder(len(args)+1)), append(args, marshalStringList(update.Photos))
	}
	if v := update.Status; v != nil {
		set, args = append(set, "status = "+placeholder(len(args)+1)), append(args, v.String())
	}
	if v := update.PopularityScore; v != nil {
		set, args = append(set, "popularity_score = "+placeholder(len(args)+1)), append(args, *v)
	}

	args = append(args, update.ID)
	stmt := `UPDATE item SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args)) + `
		RETURNING id, uid, owner_id, created_ts, updated_ts, title, description, category, condition, tags, photos, status, popularity_score`

	item := &store.Item{}
	var tags, photos, status string
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&item.ID,
		&item.UID,
		&item.OwnerID,
		&item.CreatedTs,
		&item.UpdatedTs,
		&item.Title,
		&item.Description,
		&item.Category,
		&item.Condition,
		&tags,
		&photos,
		&status,
		&item.PopularityScore,
	); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	item.Tags = unmarshalStringList(tags)
	item.Photos = unmarshalStringList(photos)
	item.Status = store.ItemStatus(status)

	return item, nil
}

func (d *DB) DeleteItem(ctx context.Context, delete *store.DeleteItem) error {
	result, err := d.db.ExecContext(ctx, `DELETE FROM item WHERE id = ?`, delete.ID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if _, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	return nil
}
