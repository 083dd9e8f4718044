package datastore

import (
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/models"
)

const maxSearchResults = 100

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PaletteRepository interface {
	Create(saved models.SavedPalette) (models.SavedPalette, error)
	Get(id string) (models.SavedPalette, error)
	ListByUser(userID string) ([]models.SavedPalette, error)
	Delete(id string, userID string) error
	Search(term string, limit int) ([]models.SavedPalette, error)
}

type PaletteDatabase struct {
	database *sql.DB
	dbtype   string
}

func NewPaletteDatabase(db *sql.DB, dbtype string) (PaletteDatabase, error) {
	if db == nil {
		return PaletteDatabase{}, errors.New("palette database requires a connection")
	}
	return PaletteDatabase{database: db, dbtype: dbtype}, nil
}

const paletteColumns = `id, user_id, name, algorithm, base_hex, shades, created_at, updated_at`

func scanPalette(row rowScanner) (models.SavedPalette, error) {
	var saved models.SavedPalette
	var baseHex, shades string

	err := row.Scan(
		&saved.ID,
		&saved.UserID,
		&saved.Palette.Name,
		&saved.Palette.Algorithm,
		&baseHex,
		&shades,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	switch err {
	case nil:
	case sql.ErrNoRows:
		return models.SavedPalette{}, NoRowsError{true, err}
	default:
		return models.SavedPalette{}, err
	}

	if saved.Palette.BaseColor, err = colorspace.HexToColor(baseHex); err != nil {
		return models.SavedPalette{}, errors.Wrapf(err, "palette %s has a corrupt base color", saved.ID)
	}
	if saved.Palette.Shades, err = models.DecodeShades(shades); err != nil {
		return models.SavedPalette{}, errors.Wrapf(err, "palette %s has corrupt shades", saved.ID)
	}

	return saved, nil
}

// Create stores a palette for its owner
func (pdb PaletteDatabase) Create(saved models.SavedPalette) (models.SavedPalette, error) {
	shades, err := saved.Palette.EncodeShades()
	if err != nil {
		return models.SavedPalette{}, err
	}

	sqlStatement := `
		INSERT INTO palettes (` + paletteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = pdb.database.Exec(Rebind(pdb.dbtype, sqlStatement),
		saved.ID,
		saved.UserID,
		saved.Palette.Name,
		saved.Palette.Algorithm,
		saved.Palette.BaseColor.Hex,
		shades,
		saved.CreatedAt,
		saved.UpdatedAt,
	)
	if err != nil {
		return models.SavedPalette{}, errors.Wrap(err, "failed to create palette")
	}

	return saved, nil
}

// Get retrieves one palette by ID
func (pdb PaletteDatabase) Get(id string) (models.SavedPalette, error) {
	row := pdb.database.QueryRow(Rebind(pdb.dbtype, `SELECT `+paletteColumns+` FROM palettes WHERE id = $1`), id)
	return scanPalette(row)
}

// ListByUser returns a user's palettes, newest first
func (pdb PaletteDatabase) ListByUser(userID string) ([]models.SavedPalette, error) {
	sqlStatement := `
		SELECT ` + paletteColumns + `
		FROM palettes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return pdb.query(sqlStatement, userID)
}

// Delete removes a palette, but only when userID owns it
func (pdb PaletteDatabase) Delete(id string, userID string) error {
	result, err := pdb.database.Exec(Rebind(pdb.dbtype, `DELETE FROM palettes WHERE id = $1 AND user_id = $2`), id, userID)
	if err != nil {
		return errors.Wrap(err, "failed to delete palette")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}

// Search matches palette names case-insensitively. % and _ in term match
// themselves.
func (pdb PaletteDatabase) Search(term string, limit int) ([]models.SavedPalette, error) {
	if limit <= 0 || limit > maxSearchResults {
		limit = maxSearchResults
	}

	sqlStatement := `
		SELECT ` + paletteColumns + `
		FROM palettes
		WHERE LOWER(name) LIKE $1 ESCAPE '\'
		ORDER BY created_at DESC
		LIMIT $2`

	pattern := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
	return pdb.query(sqlStatement, pattern, limit)
}

func (pdb PaletteDatabase) query(sqlStatement string, args ...any) ([]models.SavedPalette, error) {
	rows, err := pdb.database.Query(Rebind(pdb.dbtype, sqlStatement), args...)
	if err != nil {
		return []models.SavedPalette{}, err
	}
	defer rows.Close()

	palettes := []models.SavedPalette{}
	for rows.Next() {
		saved, err := scanPalette(rows)
		if err != nil {
			return []models.SavedPalette{}, err
		}
		palettes = append(palettes, saved)
	}

	if err = rows.Err(); err != nil {
		return []models.SavedPalette{}, err
	}

	return palettes, nil
}
