package repo

import (
	"github.com/avoronin/gameshop/internal/pg"
	logrepo "github.com/avoronin/gameshop/internal/repo/log-repo"
	orderrepo "github.com/avoronin/gameshop/internal/repo/order-repo"
	sessionrepo "github.com/avoronin/gameshop/internal/repo/session-repo"
	staterepo "github.com/avoronin/gameshop/internal/repo/state-repo"
	userrepo "github.com/avoronin/gameshop/internal/repo/user-repo"
)

// Repositories keeps the concrete repo implementations. Users and orders live
// in Postgres, the review blob in the app_state table, sessions and the action
// log in process memory.
type Repositories struct {
	UserRepo    *userrepo.Repository
	OrderRepo   *orderrepo.Repository
	StateRepo   *staterepo.Repository
	SessionRepo *sessionrepo.Repository
	LogRepo     *logrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	orderRepo := orderrepo.New(conn, txManager)
	stateRepo := staterepo.New(conn)
	sessionRepo := sessionrepo.New()
	logRepo := logrepo.New()

	return &Repositories{
		UserRepo:    userRepo,
		OrderRepo:   orderRepo,
		StateRepo:   stateRepo,
		SessionRepo: sessionRepo,
		LogRepo:     logRepo,
	}
}
