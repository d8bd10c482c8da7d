package event

import (
	"github.com/sv-web/sve-backend/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so the repository works against *sql.DB,
// *dbmetrics.DB and an open transaction alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
