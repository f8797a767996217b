package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/goserg/batchrating/gen/model"
	"github.com/goserg/batchrating/gen/table"
	"github.com/goserg/batchrating/internal/domain"
	migrate "github.com/goserg/batchrating/internal/migrate"
	"github.com/goserg/batchrating/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

// New opens a players/matches database file and migrates it to the latest schema.
func New(path string, log *logrus.Entry) (*Storage, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	err = migrate.UpRatingDB(db)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("migrate %s: %w", path, err), db.Close())
	}
	log.WithField("path", path).Debug("database opened")
	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.CreatedAt.ASC(), table.Players.Name.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) Get(ctx context.Context, id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, sql.ErrNoRows
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

// ListMatches returns all matches in insertion order with both players filled in.
func (s *Storage) ListMatches(ctx context.Context) ([]domain.Match, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.ID.ASC()).
		QueryContext(ctx, s.db, &matches)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}
	players, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	playerMap := convertPlayersToMap(players)
	if err := checkReferences(matches, playerMap); err != nil {
		return nil, err
	}
	domainMatches := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		m, err := convertMatchToDomain(match, playerMap)
		if err != nil {
			return nil, err
		}
		domainMatches = append(domainMatches, m)
	}
	s.log.WithField("matches", len(domainMatches)).Debug("matches loaded")
	return domainMatches, nil
}
