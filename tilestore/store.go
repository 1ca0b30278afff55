// seehuhn.de/go/predraster - tiled prediction raster blocks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package tilestore keeps the tiles of prediction rasters in an SQLite
// database.
package tilestore

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"seehuhn.de/go/predraster"
)

//go:embed schema.sql
var schemaSQL string

// Store is a tile database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens or creates the tile database at path.
// Use ":memory:" for a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// every connection would see its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tile schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutTile stores t as the tile of block (col, row) in the given section,
// replacing any previous tile.
func (s *Store) PutTile(section, col, row int, t *predraster.RawTile) error {
	if !t.Encoding.Valid() {
		return fmt.Errorf("%w: %v", predraster.ErrUnsupportedEncoding, t.Encoding)
	}
	if need := t.PixelCount() * t.Encoding.Size(); len(t.Data) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", predraster.ErrShortTile, len(t.Data), need)
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO tiles (section, col, row, width, height, encoding, data)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		section, col, row, t.Width, t.Height, t.Encoding.String(), t.Data)
	if err != nil {
		return fmt.Errorf("storing tile %d/(%d,%d): %w", section, col, row, err)
	}
	return nil
}

// Sections returns the section numbers which have at least one tile, in
// increasing order.
func (s *Store) Sections() ([]int, error) {
	rows, err := s.db.Query(`SELECT DISTINCT section FROM tiles ORDER BY section`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, rows.Err()
}

// Section returns a tile provider for one section of the store.
func (s *Store) Section(section int) *Section {
	return &Section{store: s, section: section}
}

// Section provides the tiles of one raster section.
type Section struct {
	store   *Store
	section int
}

// Tile implements the [predraster.TileProvider] interface.
func (p *Section) Tile(col, row int) (predraster.Tile, error) {
	t := &predraster.RawTile{}
	var encName string
	err := p.store.db.QueryRow(`
		SELECT width, height, encoding, data FROM tiles
		WHERE section = ? AND col = ? AND row = ?`,
		p.section, col, row).Scan(&t.Width, &t.Height, &encName, &t.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("loading tile %d/(%d,%d): %w", p.section, col, row, err)
	}

	t.Encoding, err = predraster.ParseEncoding(encName)
	if err != nil {
		return nil, fmt.Errorf("tile %d/(%d,%d): %w", p.section, col, row, err)
	}
	return t, nil
}

// Count returns the number of tiles stored for the section.
func (p *Section) Count() (int, error) {
	var n int
	err := p.store.db.QueryRow(`SELECT COUNT(*) FROM tiles WHERE section = ?`, p.section).Scan(&n)
	return n, err
}
