package scheduler

import (
	"database/sql"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/models"
	"github.com/color-game/palettes/naming"
	"github.com/color-game/palettes/shades"
)

type memoryDailyRepo struct {
	byDate  map[string]models.DailyPalette
	creates int
	lookErr error
}

func newMemoryDailyRepo() *memoryDailyRepo {
	return &memoryDailyRepo{byDate: make(map[string]models.DailyPalette)}
}

func (m *memoryDailyRepo) Create(daily models.DailyPalette) (models.DailyPalette, error) {
	m.creates++
	daily.ID = "daily-" + daily.Date
	m.byDate[daily.Date] = daily
	return daily, nil
}

func (m *memoryDailyRepo) GetByDate(date time.Time) (models.DailyPalette, error) {
	if m.lookErr != nil {
		return models.DailyPalette{}, m.lookErr
	}
	daily, ok := m.byDate[models.NormalizeDate(date)]
	if !ok {
		return models.DailyPalette{}, datastore.NoRowsError{NoRows: true, Err: sql.ErrNoRows}
	}
	return daily, nil
}

func (m *memoryDailyRepo) GetToday() (models.DailyPalette, error) {
	return m.GetByDate(time.Now())
}

func (m *memoryDailyRepo) GetAll() ([]models.DailyPalette, error) {
	all := []models.DailyPalette{}
	for _, daily := range m.byDate {
		all = append(all, daily)
	}
	return all, nil
}

func TestBuildDailyPalette(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	daily, err := BuildDailyPalette(rand.New(rand.NewSource(42)), shades.Tailwind, now)
	if err != nil {
		t.Fatalf("BuildDailyPalette: %v", err)
	}

	if daily.Date != "2024-06-01" {
		t.Errorf("date = %s", daily.Date)
	}
	if daily.Harmony == "" {
		t.Error("harmony not recorded")
	}
	if len(daily.Palette.Shades) != shades.DefaultShadeCount {
		t.Errorf("got %d shades", len(daily.Palette.Shades))
	}
	if err := daily.Palette.Validate(); err != nil {
		t.Errorf("invalid palette: %v", err)
	}
	if daily.Palette.Name == "" || daily.Palette.Name != naming.ConsistentName(daily.Palette.Shades) {
		t.Errorf("name = %q", daily.Palette.Name)
	}
}

func TestGenerateDailyPaletteOncePerDay(t *testing.T) {
	repo := newMemoryDailyRepo()
	s := NewScheduler(repo, shades.Tailwind)

	morning := time.Date(2024, 6, 1, 0, 0, 1, 0, time.UTC)
	first, created, err := s.GenerateDailyPalette(morning)
	if err != nil || !created {
		t.Fatalf("first run: created=%v err=%v", created, err)
	}

	again, created, err := s.GenerateDailyPalette(morning.Add(12 * time.Hour))
	if err != nil || created {
		t.Fatalf("second run: created=%v err=%v", created, err)
	}
	if again.ID != first.ID || again.Palette.Name != first.Palette.Name {
		t.Errorf("second run returned %+v, want %+v", again, first)
	}

	if _, created, _ := s.GenerateDailyPalette(morning.AddDate(0, 0, 1)); !created {
		t.Error("next day did not get a palette")
	}
	if repo.creates != 2 {
		t.Errorf("Create called %d times, want 2", repo.creates)
	}
}

func TestGenerateDailyPaletteLookupError(t *testing.T) {
	repo := newMemoryDailyRepo()
	repo.lookErr = errors.New("connection refused")
	s := NewScheduler(repo, shades.Tailwind)

	if _, _, err := s.GenerateDailyPalette(time.Now()); err == nil {
		t.Fatal("expected lookup error")
	}
	if repo.creates != 0 {
		t.Error("palette created despite a failed lookup")
	}
}

func TestStartAndStop(t *testing.T) {
	repo := newMemoryDailyRepo()
	s := NewScheduler(repo, shades.Radix)

	s.Start()
	s.Stop()
	s.Stop()

	if _, err := repo.GetToday(); err != nil {
		t.Errorf("Start did not generate today's palette: %v", err)
	}
}
