//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"shareit/cmd/bootstrap"
	"shareit/cmd/bootstrap/components"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/migrations"
	"shareit/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

// SharedSuite gives every e2e suite its own database inside one shared
// Postgres container, and the full HTTP stack wired by fx on top of it.
// Setting Clock before SetupSuite replaces the real clock in the app.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Clock  *clock.MockClock
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := postgresEndpoint(t)
	dbCfg := createDatabase(t, host, port)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, db.Migrate(ctx, dbCfg.BuildDSN(), migrations.FS), "マイグレーションに失敗")

	pool, closePool, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg, s.clockOverride())

	slog.Info("E2E環境の準備が完了しました", "database", dbCfg.DBName)
}

// SetupSubTest truncates every table so each s.Run starts from an empty schema.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}

func (s *SharedSuite) clockOverride() fx.Option {
	if s.Clock == nil {
		return fx.Options()
	}
	return fx.Decorate(func(clock.Clock) clock.Clock { return s.Clock })
}

// startApp wires the production modules around the test pool. Tracing and the
// migration-on-start path are left out; the schema is already applied.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config, override fx.Option) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(gin.New),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		override,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// createDatabase makes a fresh database per suite and drops it on cleanup.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	t.Helper()

	dbName := "shareit_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// parallel suites race on the template database; retry with a growing wait
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second))
		}
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+dbName); err == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", err.Error())
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		dropper, err := pgxpool.New(dropCtx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer dropper.Close()
		if _, err = dropper.Exec(dropCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
		MinConns: 1,
	}
}

// postgresEndpoint starts the shared container on first use.
func postgresEndpoint(t *testing.T) (string, nat.Port) {
	t.Helper()

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// データはRAMに置き、耐久性の設定は切る
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "shareit-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, containerErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return host, port
}
