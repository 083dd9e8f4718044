package datastore

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/color-game/palettes/models"
)

type UserRepository interface {
	Create(user models.User) (models.User, error)
	Get(userID string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	DeleteUserByID(userID string) error
	Update(user models.User) (models.User, error)
	ValidateAndGetUser(userLogin models.Credentials) (models.User, error)
	GetAllUsers() ([]models.User, error)

	// Device management
	CreateDevice(device models.UserDevice) error
	GetDeviceByFingerprint(userID string, fingerprint string) (models.UserDevice, error)
	DeleteDevice(deviceID string) error
}

func NewUserDatabase(db *sql.DB, dbtype string) (UserDatabase, error) {
	if db == nil {
		return UserDatabase{}, fmt.Errorf("user database requires a connection")
	}
	return UserDatabase{database: db, dbtype: dbtype}, nil
}

type NoRowsError struct {
	NoRows bool
	Err    error
}

func (nr NoRowsError) Error() string {
	return fmt.Sprintf("%v: no rows returned for scan: %v", nr.NoRows, nr.Err)
}

// IsNoRows reports whether err is a NoRowsError.
func IsNoRows(err error) bool {
	var nr NoRowsError
	return errors.As(err, &nr)
}

type UserDatabase struct {
	database *sql.DB
	dbtype   string
}

const userColumns = `
		user_id,
		username,
		email,
		password_hash,
		kind,
		approved,
		created_at,
		updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	scanErr := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Kind,
		&user.Approved,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.User{}, NoRowsError{true, scanErr}
	case nil:
		return user, nil
	default:
		return models.User{}, scanErr
	}
}

func (udb UserDatabase) Create(user models.User) (models.User, error) {
	db := udb.database

	_, insertErr := db.Exec(Rebind(udb.dbtype, `
		INSERT INTO users (`+userColumns+`
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`),
		user.UserID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Kind,
		user.Approved,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if insertErr != nil {
		return user, errors.Wrap(insertErr, "error creating user")
	}

	return user, nil
}

func (udb UserDatabase) Get(userID string) (models.User, error) {
	row := udb.database.QueryRow(Rebind(udb.dbtype, `SELECT `+userColumns+` FROM users WHERE user_id = $1`), userID)
	return scanUser(row)
}

func (udb UserDatabase) GetAllUsers() ([]models.User, error) {
	rows, queryErr := udb.database.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
	if queryErr != nil {
		return []models.User{}, queryErr
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return []models.User{}, scanErr
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return []models.User{}, rows.Err()
	}

	return users, nil
}

func (udb UserDatabase) GetUserByEmail(email string) (models.User, error) {
	row := udb.database.QueryRow(Rebind(udb.dbtype, `SELECT `+userColumns+` FROM users WHERE email = $1`), strings.ToLower(email))
	return scanUser(row)
}

func (udb UserDatabase) GetUserByUsername(username string) (models.User, error) {
	row := udb.database.QueryRow(Rebind(udb.dbtype, `SELECT `+userColumns+` FROM users WHERE username = $1`), username)
	return scanUser(row)
}

func (udb UserDatabase) DeleteUserByID(userID string) error {
	_, delErr := udb.database.Exec(Rebind(udb.dbtype, "DELETE FROM users WHERE user_id = $1"), userID)
	if delErr != nil {
		return errors.Wrap(delErr, "delete failed")
	}

	return nil
}

func (udb UserDatabase) Update(user models.User) (models.User, error) {
	user.UpdatedAt = time.Now()

	sqlStatement := `
	UPDATE users
	SET
		username = $2,
		email = $3,
		kind = $4,
		approved = $5,
		updated_at = $6
	WHERE user_id = $1
	`
	_, updateErr := udb.database.Exec(Rebind(udb.dbtype, sqlStatement),
		user.UserID,
		user.Username,
		strings.ToLower(user.Email),
		user.Kind,
		user.Approved,
		user.UpdatedAt,
	)

	if updateErr != nil {
		return models.User{}, errors.Wrap(updateErr, "error updating user")
	}
	return user, nil
}

func (udb UserDatabase) ValidateAndGetUser(credentials models.Credentials) (models.User, error) {
	user, err := udb.GetUserByEmail(credentials.Email)
	if err != nil {
		return models.User{}, errors.Wrap(err, "error in row scan")
	}

	if err := user.CheckPassword(credentials.Password); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CreateDevice creates or refreshes the device record for a user
func (udb UserDatabase) CreateDevice(device models.UserDevice) error {
	if device.ID == "" {
		device.ID = uuid.New().String()
	}

	sqlStatement := `
		INSERT INTO user_devices (id, user_id, device_data, fingerprint, expiry)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (fingerprint, user_id)
		DO UPDATE SET device_data = excluded.device_data, expiry = excluded.expiry`

	_, err := udb.database.Exec(Rebind(udb.dbtype, sqlStatement), device.ID, device.UserID, device.DeviceData, device.Fingerprint, device.Expiry)
	return err
}

// GetDeviceByFingerprint retrieves a device by user ID and fingerprint
func (udb UserDatabase) GetDeviceByFingerprint(userID string, fingerprint string) (models.UserDevice, error) {
	var device models.UserDevice

	sqlStatement := `
		SELECT id, user_id, device_data, fingerprint, expiry
		FROM user_devices
		WHERE user_id = $1 AND fingerprint = $2`

	row := udb.database.QueryRow(Rebind(udb.dbtype, sqlStatement), userID, fingerprint)
	err := row.Scan(&device.ID, &device.UserID, &device.DeviceData, &device.Fingerprint, &device.Expiry)

	switch err {
	case sql.ErrNoRows:
		return models.UserDevice{}, NoRowsError{true, err}
	case nil:
		return device, nil
	default:
		return models.UserDevice{}, err
	}
}

// DeleteDevice removes a device by ID
func (udb UserDatabase) DeleteDevice(deviceID string) error {
	_, err := udb.database.Exec(Rebind(udb.dbtype, `DELETE FROM user_devices WHERE id = $1`), deviceID)
	return err
}
