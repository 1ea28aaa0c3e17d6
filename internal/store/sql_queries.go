// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pin-keeper/models"
)

// Settings queries. The $N placeholders and ON CONFLICT upsert are understood
// by both go-sqlite3 and pgx, so the local and the cloud replica share them.
const (
	getSetting = `SELECT kind, value FROM settings WHERE key = $1;`

	upsertSetting = `
		INSERT INTO settings (key, kind, value, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			kind = excluded.kind,
			value = excluded.value,
			updated_at = excluded.updated_at;`

	deleteSetting = `DELETE FROM settings WHERE key = $1;`

	getAllSettings = `SELECT key, kind, value FROM settings;`

	clearSettings = `DELETE FROM settings;`
)

// Card table and columns used by the squirrel builders in repository_card.go.
const (
	cardsTable = "cards"

	colID           = "id"
	colDigits       = "digits"
	colPIN          = "pin"
	colDecoys       = "decoys"
	colName         = "name"
	colSortOrder    = "sort_order"
	colFavorite     = "favorite"
	colLastAccessed = "last_accessed"
	colColor        = "color"
	colCreatedAt    = "created_at"
)

var cardColumns = []string{
	colID,
	colDigits,
	colPIN,
	colDecoys,
	colName,
	colSortOrder,
	colFavorite,
	colLastAccessed,
	colColor,
	colCreatedAt,
}

// cardsBuilder renders "?" placeholders as go-sqlite3 expects.
var cardsBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildGetCardsQuery renders the listing query for filter.
func buildGetCardsQuery(filter models.CardFilter) (string, []any, error) {
	query := cardsBuilder.Select(cardColumns...).From(cardsTable)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(sq.Or{
			sq.Like{"LOWER(" + colName + ")": pattern},
			sq.Like{colDigits: pattern},
		})
	}

	switch filter.Favorite {
	case models.FavoriteOnly:
		query = query.Where(sq.Eq{colFavorite: true})
	case models.FavoriteExclude:
		query = query.Where(sq.Eq{colFavorite: false})
	}

	switch filter.SortBy {
	case models.SortOrder:
		query = query.OrderBy(colSortOrder+" ASC", colCreatedAt+" ASC")
	case models.SortLastAccessed:
		query = query.OrderBy(colLastAccessed+" IS NULL", colLastAccessed+" DESC")
	default:
		query = query.OrderBy(colCreatedAt+" ASC", colDigits+" ASC")
	}

	return query.ToSql()
}

// buildUpdateCardQuery renders an UPDATE touching only the non-nil fields of
// update. ok is false when update changes nothing.
func buildUpdateCardQuery(digits string, update models.CardUpdate) (query string, args []any, ok bool, err error) {
	builder := cardsBuilder.Update(cardsTable).Where(sq.Eq{colDigits: digits})

	set := 0
	setIf := func(col string, present bool, value any) {
		if present {
			builder = builder.Set(col, value)
			set++
		}
	}

	setIf(colDigits, update.Digits != nil, deref(update.Digits))
	setIf(colPIN, update.PIN != nil, deref(update.PIN))
	setIf(colName, update.Name != nil, nullableName(update.Name))
	setIf(colSortOrder, update.Order != nil, deref(update.Order))
	setIf(colFavorite, update.Favorite != nil, deref(update.Favorite))
	setIf(colLastAccessed, update.LastAccessed != nil, deref(update.LastAccessed))
	setIf(colColor, update.Color != nil, deref(update.Color))

	if set == 0 {
		return "", nil, false, nil
	}

	query, args, err = builder.ToSql()
	return query, args, true, err
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// nullableName stores an empty name as NULL.
func nullableName(name *string) any {
	if name == nil || *name == "" {
		return nil
	}
	return *name
}
