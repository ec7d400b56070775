package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/barterhub/barterhub/store"
)

func (d *DB) CreateExchange(ctx context.Context, create *store.Exchange) (*store.Exchange, error) {
	fields := []string{
		"requester_id", "responder_id",
		"requested_item_id", "requested_item_title",
		"offered_item_id", "offered_item_title",
		"status",
	}
	placeholderValues := []any{
		create.RequesterID, create.ResponderID,
		create.RequestedItemID, create.RequestedItemTitle,
		create.OfferedItemID, create.OfferedItemTitle,
		create.Status.String(),
	}

	stmt := `INSERT INTO exchange (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create exchange: %w", err)
	}

	return create, nil
}

func (d *DB) ListExchanges(ctx context.Context, find *store.FindExchange) ([]*store.Exchange, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "exchange.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Status; v != nil {
		where, args = append(where, "exchange.status = "+placeholder(len(args)+1)), append(args, v.String())
	}
	if v := find.ParticipantID; v != nil {
		where = append(where, "(exchange.requester_id = "+placeholder(len(args)+1)+" OR exchange.responder_id = "+placeholder(len(args)+2)+")")
		args = append(args, *v, *v)
	}

	query := `
		SELECT
			id, created_ts, updated_ts,
			requester_id, responder_id,
			requested_item_id, requested_item_title,
			offered_item_id, offered_item_title,
			status
		FROM exchange
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY exchange.created_ts DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Exchange, 0)
	for rows.Next() {
		var exchange store.Exchange
		var status string
		if err := rows.Scan(
			&exchange.ID,
			&exchange.CreatedTs,
			&exchange.UpdatedTs,
			&exchange.RequesterID,
			&exchange.ResponderID,
			&exchange.RequestedItemID,
			&exchange.RequestedItemTitle,
			&exchange.OfferedItemID,
			&exchange.OfferedItemTitle,
			&status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		exchange.Status = store.ExchangeStatus(status)
		list = append(list, &exchange)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exchanges: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateExchange(ctx context.Context, update *store.UpdateExchange) (*store.Exchange, error) {
	set, args := []string{}, []any{}

	if v := update.UpdatedTs; v != nil {
		set, args = append(set, "updated_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Status; v != nil {
		set, args = append(set, "status = "+placeholder(len(args)+1)), append(args, v.String())
	}

	args = append(args, update.ID)
	stmt := `UPDATE exchange SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args)) + `
		RETURNING id, created_ts, updated_ts, requester_id, responder_id,
			requested_item_id, requested_item_title, offered_item_id, offered_item_title, status`

	exchange := &store.Exchange{}
	var status string
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&exchange.ID,
		&exchange.CreatedTs,
		&exchange.UpdatedTs,
		&exchange.RequesterID,
		&exchange.ResponderID,
		&exchange.RequestedItemID,
		&exchange.RequestedItemTitle,
		&exchange.OfferedItemID,
		&exchange.OfferedItemTitle,
		&status,
	); err != nil {
		return nil, fmt.Errorf("failed to update exchange: %w", err)
	}
	exchange.Status = store.ExchangeStatus(status)

	return exchange, nil
}
