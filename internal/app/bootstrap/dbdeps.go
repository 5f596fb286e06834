// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// The client is shared by every handler and closed only in Shutdown.
type DBDeps struct {
	Client   *mongo.Client
	Database *mongo.Database
}
