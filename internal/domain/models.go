package domain

import "time"

// Daycare is the persisted form of a business profile, seeded once from the
// profile JSON file. Fees and Programs are stored JSON-encoded.
type Daycare struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name" json:"name"`
	Slug        string `gorm:"column:slug;uniqueIndex" json:"slug"`
	Phone       string `gorm:"column:phone" json:"phone"`
	Address     string `gorm:"column:address" json:"address"`
	Hours       string `gorm:"column:hours" json:"hours"`
	Meals       string `gorm:"column:meals" json:"meals"`
	Fees        string `gorm:"column:fees" json:"fees"`
	Programs    string `gorm:"column:programs" json:"programs"`
	TourLink    string `gorm:"column:tour_link" json:"tour_link"`
	OwnerNumber string `gorm:"column:owner_number" json:"owner_number"`
}

// TableName overrides the gorm table name for Daycare.
func (Daycare) TableName() string { return "daycares" }

// Lead records a caller who asked about enrollment so the owner can follow up.
type Lead struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DaycareID  uint      `gorm:"column:daycare_id" json:"daycare_id"`
	ParentName string    `gorm:"column:parent_name" json:"parent_name"`
	Phone      string    `gorm:"column:phone" json:"phone"`
	ChildAge   string    `gorm:"column:child_age" json:"child_age"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the gorm table name for Lead.
func (Lead) TableName() string { return "leads" }

// Interaction is the local mirror row for one logged turn, written when the
// primary log sink is unreachable.
type Interaction struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	Name      string    `gorm:"column:name" json:"name"`
	Phone     string    `gorm:"column:phone" json:"phone"`
	Message   string    `gorm:"column:message" json:"message"`
	Intent    string    `gorm:"column:intent" json:"intent"`
	Language  string    `gorm:"column:language" json:"language"`
	Channel   string    `gorm:"column:channel" json:"channel"`
	Reply     string    `gorm:"column:reply" json:"reply"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the gorm table name for Interaction.
func (Interaction) TableName() string { return "interactions" }
