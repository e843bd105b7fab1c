package repository

import "streamtube/domain/model"

// ISnapshot is the durable local slot holding the persisted subset of the
// application store under a fixed namespace. Load returns (nil, nil) when no
// snapshot has been written yet.
type ISnapshot interface {
	Load() (*model.PersistedState, error)
	Save(state *model.PersistedState) error
}
