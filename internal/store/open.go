package store

import (
	"context"
	"fmt"

	"github.com/ramanasai/smartstep/internal/config"
)

// Open builds the backend selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case "", "sqlite":
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		return OpenSQLite(path)
	case "firestore":
		if cfg.Store.ProjectID == "" {
			return nil, fmt.Errorf("store.project_id is required for the firestore driver")
		}
		return OpenFirestore(ctx, cfg.Store.ProjectID, cfg.Store.CredentialsFile)
	}
	return nil, fmt.Errorf("unknown store driver %q (want sqlite or firestore)", cfg.Store.Driver)
}
