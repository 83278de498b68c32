package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Scores maps a scoring scheme to a numeric score
type Scores map[string]float64

// User represents the users table - donors and power holders
type User struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the checksummed EVM address the balance source is queried with
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_users_wallet_address"`
	// Scores holds the donor's latest known score per scheme
	Scores datatypes.JSONType[Scores] `gorm:"column:scores;not null;type:jsonb;default:'{}'"`
	// CreatedAt is the timestamp when this user was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this user was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// Project represents the projects table - owned by the project directory, read-only here
type Project struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title is the display title of the project
	Title string `gorm:"column:title;not null;type:text"`
	// Verified gates snapshotting and matching
	Verified bool `gorm:"column:verified;not null;default:false"`
	// Eligible gates matching
	Eligible bool `gorm:"column:eligible;not null;default:false"`
	// CreatedAt is the timestamp when this project was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this project was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
