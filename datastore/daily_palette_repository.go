package datastore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/models"
)

type DailyPaletteRepository interface {
	Create(daily models.DailyPalette) (models.DailyPalette, error)
	GetByDate(date time.Time) (models.DailyPalette, error)
	GetToday() (models.DailyPalette, error)
	GetAll() ([]models.DailyPalette, error)
}

type DailyPaletteDatabase struct {
	database *sql.DB
	dbtype   string
}

func NewDailyPaletteDatabase(db *sql.DB, dbtype string) (DailyPaletteDatabase, error) {
	if db == nil {
		return DailyPaletteDatabase{}, errors.New("daily palette database requires a connection")
	}
	return DailyPaletteDatabase{database: db, dbtype: dbtype}, nil
}

const dailyPaletteColumns = `id, date, name, harmony, algorithm, base_hex, shades, created_at`

func scanDailyPalette(row rowScanner) (models.DailyPalette, error) {
	var daily models.DailyPalette
	var baseHex, shades string

	err := row.Scan(
		&daily.ID,
		&daily.Date,
		&daily.Palette.Name,
		&daily.Harmony,
		&daily.Palette.Algorithm,
		&baseHex,
		&shades,
		&daily.CreatedAt,
	)
	switch err {
	case nil:
	case sql.ErrNoRows:
		return models.DailyPalette{}, NoRowsError{true, err}
	default:
		return models.DailyPalette{}, err
	}

	if daily.Palette.BaseColor, err = colorspace.HexToColor(baseHex); err != nil {
		return models.DailyPalette{}, errors.Wrapf(err, "daily palette %s has a corrupt base color", daily.Date)
	}
	if daily.Palette.Shades, err = models.DecodeShades(shades); err != nil {
		return models.DailyPalette{}, errors.Wrapf(err, "daily palette %s has corrupt shades", daily.Date)
	}
	return daily, nil
}

// Create inserts the palette of the day
func (ddb DailyPaletteDatabase) Create(daily models.DailyPalette) (models.DailyPalette, error) {
	if daily.ID == "" {
		daily.ID = uuid.New().String()
	}

	shades, err := daily.Palette.EncodeShades()
	if err != nil {
		return models.DailyPalette{}, err
	}

	sqlStatement := `
		INSERT INTO daily_palettes (` + dailyPaletteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = ddb.database.Exec(Rebind(ddb.dbtype, sqlStatement),
		daily.ID,
		daily.Date,
		daily.Palette.Name,
		daily.Harmony,
		daily.Palette.Algorithm,
		daily.Palette.BaseColor.Hex,
		shades,
		daily.CreatedAt,
	)
	if err != nil {
		return models.DailyPalette{}, errors.Wrap(err, "failed to create daily palette")
	}

	return daily, nil
}

// GetByDate retrieves the palette for the calendar date of date
func (ddb DailyPaletteDatabase) GetByDate(date time.Time) (models.DailyPalette, error) {
	row := ddb.database.QueryRow(
		Rebind(ddb.dbtype, `SELECT `+dailyPaletteColumns+` FROM daily_palettes WHERE date = $1`),
		models.NormalizeDate(date),
	)
	return scanDailyPalette(row)
}

// GetToday retrieves today's palette
func (ddb DailyPaletteDatabase) GetToday() (models.DailyPalette, error) {
	return ddb.GetByDate(time.Now())
}

// GetAll retrieves every palette of the day, newest first
func (ddb DailyPaletteDatabase) GetAll() ([]models.DailyPalette, error) {
	rows, err := ddb.database.Query(`SELECT ` + dailyPaletteColumns + ` FROM daily_palettes ORDER BY date DESC`)
	if err != nil {
		return []models.DailyPalette{}, err
	}
	defer rows.Close()

	dailies := []models.DailyPalette{}
	for rows.Next() {
		daily, err := scanDailyPalette(rows)
		if err != nil {
			return []models.DailyPalette{}, err
		}
		dailies = append(dailies, daily)
	}

	if err = rows.Err(); err != nil {
		return []models.DailyPalette{}, err
	}

	return dailies, nil
}
