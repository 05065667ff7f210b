package domain

// Field names a numeric column of an account. The string value is the column name.
type Field string

const (
	FieldWages            Field = "wages"             // Balance
	FieldGamesPlayed      Field = "games_played"      // Counter
	FieldCorrectAnswers   Field = "correct_answers"   // Counter
	FieldIncorrectAnswers Field = "incorrect_answers" // Counter
)

// Valid reports whether f is one of the known numeric fields
func (f Field) Valid() bool {
	switch f {
	case FieldWages, FieldGamesPlayed, FieldCorrectAnswers, FieldIncorrectAnswers:
		return true
	}
	return false
}

// Counter reports whether f is a monotonically increasing counter
func (f Field) Counter() bool {
	return f.Valid() && f != FieldWages
}

// Column returns the column name for f
func (f Field) Column() string {
	return string(f)
}
