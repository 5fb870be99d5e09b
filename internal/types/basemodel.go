package types

import (
	"time"
)

// BaseModel carries the audit timestamps every persisted entity shares.
// CreatedAt is written once on insert; UpdatedAt is refreshed by the store
// on every write.
type BaseModel struct {
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

func (b *BaseModel) GetCreatedAt() time.Time {
	return b.CreatedAt
}

func (b *BaseModel) SetCreatedAt(t time.Time) {
	b.CreatedAt = t
}

// Touch stamps the model for a write happening at now. CreatedAt is only
// filled when it has never been set.
func (b *BaseModel) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
