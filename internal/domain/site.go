package domain

import (
	"database/sql"
	"time"
)

// Site 站点（顶层容器，对应 sites 表）
type Site struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`    // NOT NULL
	Address   sql.NullString `db:"address"` // nullable
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// SiteInput createSite 参数
type SiteInput struct {
	Name    string
	Address *string
}
