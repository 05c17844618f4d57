// Package model holds the GORM persistence models. These mirror database
// tables and are never exposed outside the persistence layer; mapper
// functions convert them to and from pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// gen_random_uuid(). This is the only Go type that carries the password
// hash; the domain User entity has no such field.
type UserModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	FullName     string         `gorm:"type:varchar(100);not null"`
	IsActive     bool           `gorm:"not null;default:true"`
	Roles        pq.StringArray `gorm:"type:text[];not null;default:'{user}'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []ProductModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
