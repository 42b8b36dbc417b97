package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/css-society/events-api/internal/models"
)

func setupRegistrationPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS user_events (
		user_id UUID NOT NULL,
		event_slug VARCHAR(100) NOT NULL,
		event_name VARCHAR(200) NOT NULL DEFAULT '',
		attendance_status VARCHAR(50) NOT NULL DEFAULT '',
		whatsapp_group_link TEXT NOT NULL DEFAULT '',
		registered_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, event_slug)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestRegistrationWriteRepository_Save(t *testing.T) {
	db, teardown := setupRegistrationPostgresContainer(t)
	defer teardown()

	repo := NewRegistrationWriteRepository(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	err := repo.Save(ctx, userID, "css-hackathon", "CSS Hackathon", "https://chat.whatsapp.com/h")
	assert.NoError(t, err)

	var reg models.RegistrationDB
	err = db.Get(&reg, "SELECT user_id, event_slug, event_name, attendance_status, whatsapp_group_link, registered_at FROM user_events WHERE user_id=$1", userID)
	assert.NoError(t, err)
	assert.Equal(t, "css-hackathon", reg.EventSlug)
	assert.Equal(t, "CSS Hackathon", reg.EventName)
	assert.Equal(t, "", reg.AttendanceStatus)

	// Same user, same event hits the uniqueness constraint
	err = repo.Save(ctx, userID, "css-hackathon", "CSS Hackathon", "https://chat.whatsapp.com/h")
	assert.ErrorIs(t, err, ErrDuplicateRegistration)

	// Same user, different event is fine
	err = repo.Save(ctx, userID, "css-go", "CSS Go", "")
	assert.NoError(t, err)

	// Different user, same event is fine
	err = repo.Save(ctx, uuid.New(), "css-hackathon", "CSS Hackathon", "https://chat.whatsapp.com/h")
	assert.NoError(t, err)
}

func TestRegistrationWriteRepository_Save_InTransaction(t *testing.T) {
	db, teardown := setupRegistrationPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := uuid.New()

	tx, err := db.Beginx()
	assert.NoError(t, err)

	repo := NewRegistrationWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	err = repo.Save(ctx, userID, "css-abacus", "CSS Abacus", "")
	assert.NoError(t, err)

	// Rolled back insert leaves no row behind
	assert.NoError(t, tx.Rollback())

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM user_events WHERE user_id=$1", userID))
	assert.Equal(t, 0, count)
}

func TestRegistrationReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupRegistrationPostgresContainer(t)
	defer teardown()

	readRepo := NewRegistrationReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := db.Exec(`
		INSERT INTO user_events (user_id, event_slug, event_name, registered_at) VALUES
		($1, 'first', 'First', NOW() - INTERVAL '2 days'),
		($1, 'second', 'Second', NOW() - INTERVAL '1 day'),
		($2, 'other', 'Other', NOW())`,
		userID, uuid.New())
	assert.NoError(t, err)

	regs, err := readRepo.ListByUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, regs, 2)
	// Newest first
	assert.Equal(t, "second", regs[0].EventSlug)
	assert.Equal(t, "first", regs[1].EventSlug)

	regs, err = readRepo.ListByUser(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, regs)
}

func TestRegistrationReadRepository_LatestAttended(t *testing.T) {
	db, teardown := setupRegistrationPostgresContainer(t)
	defer teardown()

	readRepo := NewRegistrationReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	// No rows at all
	reg, err := readRepo.LatestAttended(ctx, userID)
	assert.NoError(t, err)
	assert.Nil(t, reg)

	_, err = db.Exec(`
		INSERT INTO user_events (user_id, event_slug, event_name, attendance_status, registered_at) VALUES
		($1, 'registered-only', 'Registered Only', '', NOW()),
		($1, 'old-attended', 'Old Attended', 'attended', NOW() - INTERVAL '2 days'),
		($1, 'new-attended', 'New Attended', 'attended', NOW() - INTERVAL '1 day')`,
		userID)
	assert.NoError(t, err)

	// Most recent attended row wins; plain registrations never qualify
	reg, err = readRepo.LatestAttended(ctx, userID)
	assert.NoError(t, err)
	assert.NotNil(t, reg)
	assert.Equal(t, "new-attended", reg.EventSlug)
	assert.Equal(t, models.AttendanceStatusAttended, reg.AttendanceStatus)
}
