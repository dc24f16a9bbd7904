// Package diagram persists the blocks of a project's diagram in SQLite.
//
// Only block placement and kind are stored. Terminals are rebuilt from the
// kind whenever a block is loaded, so their ids always follow the
// "{block}_in_{i}" / "{block}_out_{i}" pattern.
package diagram

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/qorex-scitech/lazo/internal/block"

	_ "modernc.org/sqlite"
)

// ErrBlockNotFound is returned when no block has the requested id.
var ErrBlockNotFound = errors.New("block not found")

// Dir is the per-project directory holding suite state.
const Dir = ".lazo"

// FileName is the diagram database name inside Dir.
const FileName = "diagram.db"

// PathFor returns the diagram database path of a project.
func PathFor(projectDir string) string {
	return filepath.Join(projectDir, Dir, FileName)
}

// Store is a SQLite-backed block store.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewStore creates an unopened store.
func NewStore() *Store {
	return &Store{now: func() time.Time { return time.Now().UTC() }}
}

// Open opens the database at path, creating parent directories.
func (s *Store) Open(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// OpenProject opens and migrates the diagram of a project.
func OpenProject(projectDir string) (*Store, error) {
	s := NewStore()
	if err := s.Open(PathFor(projectDir)); err != nil {
		return nil, err
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBlock inserts or updates a block.
func (s *Store) SaveBlock(ctx context.Context, b *block.Block) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if err := b.Validate(); err != nil {
		return err
	}

	now := s.now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blocks (id, kind, function, width, height, pos_x, pos_y, flipped, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			function = excluded.function,
			width = excluded.width,
			height = excluded.height,
			pos_x = excluded.pos_x,
			pos_y = excluded.pos_y,
			flipped = excluded.flipped,
			updated_at = excluded.updated_at`,
		b.ID, b.Kind.String(), b.Function, b.Size.X, b.Size.Y, b.Pos.X, b.Pos.Y, b.Flipped, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save block %s: %w", b.ID, err)
	}
	return nil
}

// GetBlock loads a block by id.
func (s *Store) GetBlock(ctx context.Context, id string) (*block.Block, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, function, width, height, pos_x, pos_y, flipped
		FROM blocks WHERE id = ?`, id)
	b, err := scanBlock(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	return b, nil
}

// ListBlocks returns all blocks in creation order.
func (s *Store) ListBlocks(ctx context.Context) ([]*block.Block, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, function, width, height, pos_x, pos_y, flipped
		FROM blocks ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*block.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// DeleteBlock removes a block.
func (s *Store) DeleteBlock(ctx context.Context, id string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM blocks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete block: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete block: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBlock(sc scanner) (*block.Block, error) {
	var (
		id, kindName, function string
		w, h, x, y             float64
		flipped                bool
	)
	if err := sc.Scan(&id, &kindName, &function, &w, &h, &x, &y, &flipped); err != nil {
		return nil, err
	}

	kind, err := block.ParseKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", id, err)
	}

	size := block.Vec2{X: float32(w), Y: float32(h)}
	pos := block.Vec2{X: float32(x), Y: float32(y)}
	return block.New(id, kind, function, size, pos, flipped), nil
}
