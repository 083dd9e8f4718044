package scheduler

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/harmony"
	"github.com/color-game/palettes/models"
	"github.com/color-game/palettes/naming"
	"github.com/color-game/palettes/shades"
)

type Scheduler struct {
	DailyPaletteRepo datastore.DailyPaletteRepository
	Algorithm        shades.Algorithm

	mu     sync.Mutex
	rng    *rand.Rand
	timer  *time.Timer
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func NewScheduler(repo datastore.DailyPaletteRepository, algorithm shades.Algorithm) *Scheduler {
	return &Scheduler{
		DailyPaletteRepo: repo,
		Algorithm:        algorithm,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		done:             make(chan struct{}),
	}
}

// Start generates today's palette if it is missing, then runs again at every
// midnight.
func (s *Scheduler) Start() {
	if _, _, err := s.GenerateDailyPalette(time.Now()); err != nil {
		log.Printf("Error generating daily palette: %v", err)
	}

	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next daily palette generation in %v", durationUntilMidnight)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(durationUntilMidnight, func() {
		s.run()

		s.mu.Lock()
		s.ticker = time.NewTicker(24 * time.Hour)
		ticker := s.ticker
		s.mu.Unlock()
		defer ticker.Stop()

		ticks := ticker.C
		for {
			select {
			case <-ticks:
				s.run()
			case <-s.done:
				return
			}
		}
	})
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		s.mu.Unlock()
		close(s.done)
		log.Println("Scheduler stopped")
	})
}

func (s *Scheduler) run() {
	if _, _, err := s.GenerateDailyPalette(time.Now()); err != nil {
		log.Printf("Error generating daily palette: %v", err)
	}
}

// GenerateDailyPalette stores the palette for the date of now unless one
// already exists. The bool reports whether a new palette was created.
func (s *Scheduler) GenerateDailyPalette(now time.Time) (models.DailyPalette, bool, error) {
	date := models.NormalizeDate(now)

	existing, err := s.DailyPaletteRepo.GetByDate(now)
	if err == nil {
		log.Printf("Daily palette already exists for %s: %s", date, existing.Palette.Name)
		return existing, false, nil
	}
	if !datastore.IsNoRows(err) {
		return models.DailyPalette{}, false, errors.Wrapf(err, "looking up daily palette for %s", date)
	}

	s.mu.Lock()
	daily, err := BuildDailyPalette(s.rng, s.Algorithm, now)
	s.mu.Unlock()
	if err != nil {
		return models.DailyPalette{}, false, err
	}

	saved, err := s.DailyPaletteRepo.Create(daily)
	if err != nil {
		return models.DailyPalette{}, false, err
	}

	log.Printf("Successfully generated daily palette: %s (%s, %s) for %s",
		saved.Palette.Name, saved.Harmony, saved.Palette.BaseColor.Hex, saved.Date)

	return saved, true, nil
}

// BuildDailyPalette draws a harmony seed and expands it into a named scale.
func BuildDailyPalette(rng *rand.Rand, algorithm shades.Algorithm, now time.Time) (models.DailyPalette, error) {
	result := harmony.Random(rng, 1)

	palette, err := shades.Generate(result.Colors[0], shades.Options{
		Algorithm:     algorithm,
		ShadeCount:    shades.DefaultShadeCount,
		NamingPattern: shades.Pattern50To950,
	})
	if err != nil {
		return models.DailyPalette{}, errors.Wrap(err, "generating daily palette")
	}
	palette.Name = naming.ConsistentName(palette.Shades)

	return models.DailyPalette{
		Date:      models.NormalizeDate(now),
		Harmony:   string(result.Harmony),
		Palette:   palette,
		CreatedAt: time.Now(),
	}, nil
}
