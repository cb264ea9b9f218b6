package gormstore

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           int64             `gorm:"primaryKey;autoIncrement"`
	Email        string            `gorm:"type:varchar(320);uniqueIndex;not null"`
	FullName     *string           `gorm:"type:varchar(200)"`
	PasswordHash string            `gorm:"type:varchar(255);not null"`
	IsActive     bool              `gorm:"not null"`
	CreatedAt    time.Time         `gorm:"autoCreateTime;not null"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime;not null"`
	Profile      *UserProfileModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (UserModel) TableName() string {
	return "users"
}

// UserProfileModel é o model GORM para perfis (um-para-um com UserModel)
type UserProfileModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"uniqueIndex:uq_user_profiles_user_id;not null"`
	Phone     *string   `gorm:"type:varchar(30)"`
	City      *string   `gorm:"type:varchar(120)"`
	Country   *string   `gorm:"type:varchar(120)"`
	Timezone  *string   `gorm:"type:varchar(60)"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
