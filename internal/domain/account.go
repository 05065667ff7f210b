package domain

// DefaultWages is the balance every account starts with
const DefaultWages int64 = 1000

// Account Model
type Account struct {
	ID               uint   `gorm:"primaryKey" json:"id"`                          // Primary key
	Username         string `gorm:"size:191;uniqueIndex;not null" json:"username"` // Unique, case-sensitive username
	Credential       string `gorm:"column:password;not null" json:"-"`             // Sealed credential, never serialized
	Wages            int64  `gorm:"not null;default:1000" json:"wages"`            // In-game currency, may go negative
	GamesPlayed      int64  `gorm:"not null;default:0" json:"games_played"`        // Games played counter
	CorrectAnswers   int64  `gorm:"not null;default:0" json:"correct_answers"`     // Correct answers counter
	IncorrectAnswers int64  `gorm:"not null;default:0" json:"incorrect_answers"`   // Incorrect answers counter
}

// TableName pins the table name used by gorm
func (Account) TableName() string {
	return "accounts"
}
