package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/futureletter/internal/dbx"
	"github.com/dmitrijs2005/futureletter/internal/server/repositories/letters"
	"github.com/dmitrijs2005/futureletter/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/futureletter/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Letters(db dbx.DBTX) letters.Repository
}
