package domain

// Entity is anything persisted with an identity and an optimistic lock version.
type Entity interface {
	GetID() int64
	GetVersion() int
	IsNew() bool
}

// Base holds the identity columns shared by all persisted entities.
// ID 0 means the entity was never persisted.
type Base struct {
	ID      int64 `json:"id"`
	Version int   `json:"version"`
}

func (b Base) GetID() int64 {
	return b.ID
}

func (b Base) GetVersion() int {
	return b.Version
}

func (b Base) IsNew() bool {
	return b.ID == 0
}
