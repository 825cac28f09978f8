package app

import (
	"context"

	"tableflip.dev/streak/pkg/auth"
	"tableflip.dev/streak/pkg/icons"
	"tableflip.dev/streak/pkg/persist"
	"tableflip.dev/streak/pkg/remote"
	"tableflip.dev/streak/pkg/store"
)

// Bootstrap is the wired application: config, storage, auth, sync, and
// the service on top of them. Commands call Load and pick the pieces
// they need.
type Bootstrap struct {
	Config  persist.Config
	Local   *persist.Local
	Auth    *auth.Provider
	Remote  *remote.Adapter
	Icons   *icons.Catalog
	Service *Service
}

// Load wires the app from config. Pass nil to read the default config.
func Load(ctx context.Context, cfg persist.Config) (*Bootstrap, error) {
	if cfg == nil {
		var err error
		cfg, err = persist.LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	local, err := persist.Open(cfg)
	if err != nil {
		return nil, err
	}

	provider := auth.NewProvider(local.BasePath())
	adapter := &remote.Adapter{
		Client:  remote.NewClient(cfg.RemoteURL(), cfg.RemoteAnonKey()),
		Session: provider,
	}

	catalog, err := icons.Load(ctx, local.BasePath())
	if err != nil {
		return nil, err
	}

	return &Bootstrap{
		Config: cfg,
		Local:  local,
		Auth:   provider,
		Remote: adapter,
		Icons:  catalog,
		Service: &Service{
			Store:   store.New(),
			Saver:   &persist.SmartSaver{Session: provider, Remote: adapter, Local: local},
			Local:   local,
			Remote:  adapter,
			Session: provider,
		},
	}, nil
}

// Refresh hydrates the store from the session's storage target.
func (b *Bootstrap) Refresh(ctx context.Context) {
	b.Service.ApplyHydration(b.Service.Hydrate(ctx))
}
