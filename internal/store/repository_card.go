// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// cardRepository is the SQLite-backed implementation of [CardRepository].
//
// Decoy PINs are stored as a JSON array in the decoys column; they are
// written on insert only and never touched by UpdateCard.
type cardRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCardRepository constructs a [CardRepository] on the local database.
func NewCardRepository(db *DB, log *logger.Logger) CardRepository {
	log.Debug().Msg("creating card repository")
	return &cardRepository{db: db, logger: log}
}

func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := r.logger.Ctx(ctx)

	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}
	if card.DecoyPINs == nil {
		card.DecoyPINs = []string{}
	}

	decoys, err := json.Marshal(card.DecoyPINs)
	if err != nil {
		return models.Card{}, fmt.Errorf("marshal decoys: %w", err)
	}

	query, args, err := cardsBuilder.Insert(cardsTable).
		Columns(cardColumns...).
		Values(
			card.ID.String(),
			card.Digits,
			card.PIN,
			string(decoys),
			nullableName(card.Name),
			card.Order,
			card.Favorite,
			card.LastAccessed,
			card.Color,
			card.CreatedAt,
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "cardRepository.CreateCard").Msg("failed to build insert query")
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "cardRepository.CreateCard").Str("digits", card.Digits).Msg("card digits already exist")
			return models.Card{}, ErrCardDigitsTaken
		}
		log.Err(err).Str("func", "cardRepository.CreateCard").Str("digits", card.Digits).Msg("failed to insert card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return card, nil
}

func (r *cardRepository) GetCardByDigits(ctx context.Context, digits string) (models.Card, error) {
	log := r.logger.Ctx(ctx)

	query, args, err := cardsBuilder.Select(cardColumns...).
		From(cardsTable).
		Where(sq.Eq{colDigits: digits}).
		ToSql()
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	card, err := scanCard(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "cardRepository.GetCardByDigits").Str("digits", digits).Msg("failed to read card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

func (r *cardRepository) GetCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	log := r.logger.Ctx(ctx)

	query, args, err := buildGetCardsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "cardRepository.GetCards").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cardRepository.GetCards").Msg("failed to query cards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Err(err).Str("func", "cardRepository.GetCards").Msg("failed to scan card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "cardRepository.GetCards").Msg("error iterating card rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cards, nil
}

func (r *cardRepository) UpdateCard(ctx context.Context, digits string, update models.CardUpdate) (models.Card, error) {
	log := r.logger.Ctx(ctx)

	query, args, ok, err := buildUpdateCardQuery(digits, update)
	if err != nil {
		log.Err(err).Str("func", "cardRepository.UpdateCard").Msg("failed to build update query")
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if !ok {
		return r.GetCardByDigits(ctx, digits)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Card{}, ErrCardDigitsTaken
		}
		log.Err(err).Str("func", "cardRepository.UpdateCard").Str("digits", digits).Msg("failed to update card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Card{}, ErrCardNotFound
	}

	if update.Digits != nil {
		digits = *update.Digits
	}
	return r.GetCardByDigits(ctx, digits)
}

func (r *cardRepository) DeleteCard(ctx context.Context, digits string) error {
	query, args, err := cardsBuilder.Delete(cardsTable).Where(sq.Eq{colDigits: digits}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "cardRepository.DeleteCard").Str("digits", digits).Msg("failed to delete card")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *cardRepository) DigitsExist(ctx context.Context, digits string) (bool, error) {
	query, args, err := cardsBuilder.Select("1").From(cardsTable).Where(sq.Eq{colDigits: digits}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "cardRepository.DigitsExist").Msg("failed to query card digits")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}

func (r *cardRepository) Count(ctx context.Context) (int, error) {
	query, args, err := cardsBuilder.Select("COUNT(*)").From(cardsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "cardRepository.Count").Msg("failed to count cards")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func (r *cardRepository) Reset(ctx context.Context) error {
	query, args, err := cardsBuilder.Delete(cardsTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Ctx(ctx).Err(err).Str("func", "cardRepository.Reset").Msg("failed to delete cards")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (models.Card, error) {
	var (
		card         models.Card
		id, decoys   string
		name         sql.NullString
		lastAccessed sql.NullTime
	)

	if err := row.Scan(
		&id,
		&card.Digits,
		&card.PIN,
		&decoys,
		&name,
		&card.Order,
		&card.Favorite,
		&lastAccessed,
		&card.Color,
		&card.CreatedAt,
	); err != nil {
		return models.Card{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: card id: %w", ErrCorruptedValue, err)
	}
	card.ID = parsed

	if err := json.Unmarshal([]byte(decoys), &card.DecoyPINs); err != nil {
		return models.Card{}, fmt.Errorf("%w: card decoys: %w", ErrCorruptedValue, err)
	}
	if name.Valid {
		card.Name = &name.String
	}
	if lastAccessed.Valid {
		t := lastAccessed.Time
		card.LastAccessed = &t
	}

	return card, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
