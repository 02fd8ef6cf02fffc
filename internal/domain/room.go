package domain

import "time"

// Room 房间（隶属 Site，对应 rooms 表）
type Room struct {
	ID        int64     `db:"id"`
	SiteID    int64     `db:"site_id"` // FK -> sites.id
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RoomInput createRoom 参数
type RoomInput struct {
	SiteID int64
	Name   string
}
