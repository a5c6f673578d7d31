package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/boxkeep/internal/domain"
)

// SaveTerminalToken stores token, replacing any token for the same container.
func (s *Store) SaveTerminalToken(ctx context.Context, token domain.TerminalToken) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO terminal_tokens (runtime_id, owner_id, token, expires_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(runtime_id) DO UPDATE SET owner_id = excluded.owner_id, token = excluded.token, expires_at = excluded.expires_at`,
		token.RuntimeID, token.Owner.String(), token.Token, formatTime(token.ExpiresAt)); err != nil {
		return storeErr("save terminal token", err)
	}
	return nil
}

// ConsumeTerminalToken validates and deletes a token in one transaction.
func (s *Store) ConsumeTerminalToken(ctx context.Context, runtimeID, token string, now time.Time) (*domain.TerminalToken, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin consume token", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		stored    domain.TerminalToken
		owner     string
		expiresAt string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT runtime_id, owner_id, token, expires_at FROM terminal_tokens WHERE runtime_id = ?`,
		runtimeID).Scan(&stored.RuntimeID, &owner, &stored.Token, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewError(domain.KindNotFound, "invalid or expired token", nil)
	}
	if err != nil {
		return nil, storeErr("load terminal token", err)
	}
	stored.Owner = domain.OwnerID(owner)
	if stored.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return nil, storeErr("load terminal token", err)
	}
	if stored.Token != token || stored.Expired(now) {
		return nil, domain.NewError(domain.KindNotFound, "invalid or expired token", nil)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM terminal_tokens WHERE runtime_id = ?`, runtimeID); err != nil {
		return nil, storeErr("delete terminal token", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr("commit consume token", err)
	}
	return &stored, nil
}

// PurgeExpiredTokens deletes tokens expired at now.
func (s *Store) PurgeExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM terminal_tokens WHERE expires_at <= ?`, formatTime(now))
	if err != nil {
		return 0, storeErr("purge terminal tokens", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("purge terminal tokens", err)
	}
	return int(n), nil
}
