package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/taemindang/taemindang/postgres/migrator"
)

var (
	testDB       *pgxpool.Pool
	testPostgres *Postgres
)

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	var skipIntegration bool
	flag.BoolVar(&skipIntegration, "skip-integration", false, "Skip integration tests docker setup")
	flag.Parse()

	if skipIntegration || testing.Short() {
		return m.Run()
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		fmt.Printf("could not create docker pool: %v\n", err)
		return 1
	}

	var cleanup func() error
	testDB, cleanup, err = setupTestDB(pool)
	if err != nil {
		fmt.Printf("could not setup test db: %v\n", err)
		return 1
	}

	defer func() {
		testDB.Close()
		if err := cleanup(); err != nil {
			fmt.Printf("could not cleanup postgres container: %v\n", err)
		}
	}()

	if _, err := migrator.Migrate(context.Background(), testDB, MigrationsFS); err != nil {
		fmt.Printf("could not run migrations: %v\n", err)
		return 1
	}

	testPostgres = New(testDB)

	return m.Run()
}

func setupTestDB(pool *dockertest.Pool) (*pgxpool.Pool, func() error, error) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "17-alpine",
		Env: []string{
			"POSTGRES_USER=taemindang",
			"POSTGRES_PASSWORD=taemindang",
			"POSTGRES_DB=taemindang",
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create postgres resource: %w", err)
	}

	var db *pgxpool.Pool
	err = pool.Retry(func() (err error) {
		hostPort := resource.GetHostPort("5432/tcp")
		db, err = pgxpool.New(context.Background(), "postgresql://taemindang:taemindang@"+hostPort+"/taemindang?sslmode=disable")
		if err != nil {
			return fmt.Errorf("could not open db: %w", err)
		}

		if err = db.Ping(context.Background()); err != nil {
			db.Close()
			return fmt.Errorf("could not ping db: %w", err)
		}

		return nil
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, nil, err
	}

	return db, func() error {
		return pool.Purge(resource)
	}, nil
}

func requireDB(t *testing.T) {
	t.Helper()

	if testPostgres == nil {
		t.Skip("integration database not available")
	}
}

func genMember(t *testing.T, nickname string) int64 {
	t.Helper()

	const query = `
		INSERT INTO members (email, nickname)
		VALUES (@email, @nickname)
		RETURNING id
	`
	var id int64
	err := testDB.QueryRow(context.Background(), query, pgx.StrictNamedArgs{
		"email":    fmt.Sprintf("%s-%s@example.org", nickname, t.Name()),
		"nickname": nickname,
	}).Scan(&id)
	if err != nil {
		t.Fatalf("could not insert member: %v", err)
	}

	return id
}

func genItem(t *testing.T, sellerID int64, title string) int64 {
	t.Helper()

	const query = `
		INSERT INTO items (seller_id, title)
		VALUES (@seller_id, @title)
		RETURNING id
	`
	var id int64
	err := testDB.QueryRow(context.Background(), query, pgx.StrictNamedArgs{
		"seller_id": sellerID,
		"title":     title,
	}).Scan(&id)
	if err != nil {
		t.Fatalf("could not insert item: %v", err)
	}

	_, err = testDB.Exec(context.Background(), `
		INSERT INTO item_images (item_id, image_url, is_thumbnail)
		VALUES (@item_id, '/uploads/thumb.jpg', true)
	`, pgx.StrictNamedArgs{"item_id": id})
	if err != nil {
		t.Fatalf("could not insert item image: %v", err)
	}

	return id
}
