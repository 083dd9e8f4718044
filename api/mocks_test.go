package api

import (
	"database/sql"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/color-game/palettes/config"
	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/models"
)

const testSecret = "test-secret"

var errNoRows = datastore.NoRowsError{NoRows: true, Err: sql.ErrNoRows}

type mockUserRepo struct {
	users   map[string]models.User
	devices map[string]models.UserDevice

	deletedDevices []string
}

func newMockUserRepo(users ...models.User) *mockUserRepo {
	m := &mockUserRepo{
		users:   make(map[string]models.User),
		devices: make(map[string]models.UserDevice),
	}
	for _, u := range users {
		m.users[u.UserID] = u
	}
	return m
}

func (m *mockUserRepo) Create(user models.User) (models.User, error) {
	m.users[user.UserID] = user
	return user, nil
}

func (m *mockUserRepo) Get(userID string) (models.User, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return models.User{}, errNoRows
}

func (m *mockUserRepo) GetUserByEmail(email string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, errNoRows
}

func (m *mockUserRepo) GetUserByUsername(username string) (models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, errNoRows
}

func (m *mockUserRepo) DeleteUserByID(userID string) error {
	delete(m.users, userID)
	return nil
}

func (m *mockUserRepo) Update(user models.User) (models.User, error) {
	m.users[user.UserID] = user
	return user, nil
}

func (m *mockUserRepo) ValidateAndGetUser(creds models.Credentials) (models.User, error) {
	user, err := m.GetUserByEmail(creds.Email)
	if err != nil {
		return models.User{}, err
	}
	if err := user.CheckPassword(creds.Password); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (m *mockUserRepo) GetAllUsers() ([]models.User, error) {
	users := []models.User{}
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepo) CreateDevice(device models.UserDevice) error {
	device.ID = device.UserID + "/" + device.Fingerprint
	m.devices[device.ID] = device
	return nil
}

func (m *mockUserRepo) GetDeviceByFingerprint(userID, fingerprint string) (models.UserDevice, error) {
	if d, ok := m.devices[userID+"/"+fingerprint]; ok {
		return d, nil
	}
	return models.UserDevice{}, errNoRows
}

func (m *mockUserRepo) DeleteDevice(deviceID string) error {
	m.deletedDevices = append(m.deletedDevices, deviceID)
	delete(m.devices, deviceID)
	return nil
}

type mockPaletteRepo struct {
	saved []models.SavedPalette

	searchTerm  string
	searchLimit int
}

func (m *mockPaletteRepo) Create(saved models.SavedPalette) (models.SavedPalette, error) {
	m.saved = append(m.saved, saved)
	return saved, nil
}

func (m *mockPaletteRepo) Get(id string) (models.SavedPalette, error) {
	for _, s := range m.saved {
		if s.ID == id {
			return s, nil
		}
	}
	return models.SavedPalette{}, errNoRows
}

func (m *mockPaletteRepo) ListByUser(userID string) ([]models.SavedPalette, error) {
	mine := []models.SavedPalette{}
	for _, s := range m.saved {
		if s.UserID == userID {
			mine = append(mine, s)
		}
	}
	return mine, nil
}

func (m *mockPaletteRepo) Delete(id, userID string) error {
	for i, s := range m.saved {
		if s.ID == id && s.UserID == userID {
			m.saved = append(m.saved[:i], m.saved[i+1:]...)
			return nil
		}
	}
	return errNoRows
}

func (m *mockPaletteRepo) Search(term string, limit int) ([]models.SavedPalette, error) {
	m.searchTerm, m.searchLimit = term, limit
	return []models.SavedPalette{}, nil
}

type mockDailyRepo struct {
	today *models.DailyPalette
	all   []models.DailyPalette
}

func (m *mockDailyRepo) Create(daily models.DailyPalette) (models.DailyPalette, error) {
	m.today = &daily
	return daily, nil
}

func (m *mockDailyRepo) GetByDate(date time.Time) (models.DailyPalette, error) {
	return m.GetToday()
}

func (m *mockDailyRepo) GetToday() (models.DailyPalette, error) {
	if m.today == nil {
		return models.DailyPalette{}, errNoRows
	}
	return *m.today, nil
}

func (m *mockDailyRepo) GetAll() ([]models.DailyPalette, error) {
	return m.all, nil
}

type mockGenerator struct {
	daily   models.DailyPalette
	created bool
	calls   int
}

func (m *mockGenerator) GenerateDailyPalette(now time.Time) (models.DailyPalette, bool, error) {
	m.calls++
	return m.daily, m.created, nil
}

func testConfig() config.Config {
	return config.Config{
		JwtSecret:            testSecret,
		JwtAccessDuration:    900,
		JwtRefreshDuration:   3600,
		AllowedOrigins:       []string{"https://palettes.example.com"},
		DefaultAlgorithm:     "tailwind",
		DefaultShadeCount:    11,
		DefaultNamingPattern: "50-950",
		FallbackSeed:         "#3B82F6",
	}
}

type testApp struct {
	*Application
	users    *mockUserRepo
	palettes *mockPaletteRepo
	dailies  *mockDailyRepo
	handler  http.Handler
}

func newTestApp(users ...models.User) testApp {
	ta := testApp{
		users:    newMockUserRepo(users...),
		palettes: &mockPaletteRepo{},
		dailies:  &mockDailyRepo{},
	}
	ta.Application = &Application{
		Config:           testConfig(),
		UserRepo:         ta.users,
		PaletteRepo:      ta.palettes,
		DailyPaletteRepo: ta.dailies,
		NewRand:          func() *rand.Rand { return rand.New(rand.NewSource(7)) },
	}
	ta.handler = ta.BuildRoutes(http.NewServeMux())
	return ta
}

// loginAs registers a device for user and returns a valid access cookie.
func (ta testApp) loginAs(t *testing.T, user models.User) *http.Cookie {
	t.Helper()
	const fingerprint = "test-device"
	if err := ta.users.CreateDevice(models.UserDevice{
		UserID:      user.UserID,
		Fingerprint: fingerprint,
		Expiry:      time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatal(err)
	}

	token, err := models.NewClaims(user, fingerprint, models.ScopeAuthentication, time.Now().Add(time.Minute)).Sign(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Cookie{Name: models.JWT.ACCESS_COOKIE_NAME, Value: token}
}

func testUser(t *testing.T, username, kind string) models.User {
	t.Helper()
	user, err := models.NewUser(models.UserSignupRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatal(err)
	}
	user.Kind = kind
	return user
}
