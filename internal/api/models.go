package api

// SetPassphraseRequest is the request body for enabling the passphrase lock.
type SetPassphraseRequest struct {
	Passphrase string `json:"passphrase" validate:"required,min=8,max=72"`
}

// LoginRequest is the request body for passphrase login.
type LoginRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// AuthStatusResponse reports whether the passphrase lock is enabled.
type AuthStatusResponse struct {
	Enabled bool `json:"enabled"`
}

// UpdateStatsRequest is the request body for overwriting character stats.
type UpdateStatsRequest struct {
	Wisdom     int `json:"wisdom" validate:"required,min=1"`
	Focus      int `json:"focus" validate:"required,min=1"`
	Memory     int `json:"memory" validate:"required,min=1"`
	Discipline int `json:"discipline" validate:"required,min=1"`
}

// AddXPRequest is the request body for a direct XP award.
type AddXPRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// CreateQuestRequest is the request body for creating a quest.
// A zero xpReward means the default reward for the difficulty applies.
type CreateQuestRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Subject     string `json:"subject" validate:"max=100"`
	Unit        string `json:"unit" validate:"max=100"`
	Topic       string `json:"topic" validate:"max=200"`
	Type        string `json:"type" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required"`
	XPReward    int    `json:"xpReward" validate:"min=0"`
}

// CreateDeckRequest is the request body for creating a flashcard deck.
type CreateDeckRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Subject string `json:"subject" validate:"max=100"`
	Unit    string `json:"unit" validate:"max=100"`
	Topic   string `json:"topic" validate:"max=200"`
}

// UpdateDeckRequest is the request body for renaming or re-filing a deck.
type UpdateDeckRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Subject string `json:"subject" validate:"max=100"`
	Unit    string `json:"unit" validate:"max=100"`
	Topic   string `json:"topic" validate:"max=200"`
}

// AddCardRequest is the request body for adding a single flashcard.
type AddCardRequest struct {
	Front string `json:"front" validate:"required,max=2000"`
	Back  string `json:"back" validate:"required,max=2000"`
}

// ImportCardsRequest is the request body for a bulk card import. Text is
// comma-separated front/back lines pasted straight from a notes file.
type ImportCardsRequest struct {
	Text string `json:"text" validate:"required"`
}

// ImportCardsResponse reports how many rows the import parsed and appended.
type ImportCardsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// CreateNoteRequest is the request body for registering a study note.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Subject string `json:"subject" validate:"required,max=100"`
	Topic   string `json:"topic" validate:"required,max=200"`
	URL     string `json:"url" validate:"required,url"`
}

// RecordSessionRequest is the request body for recording a finished
// study-timer session.
type RecordSessionRequest struct {
	Preset  string `json:"preset" validate:"required,max=100"`
	Minutes int    `json:"minutes" validate:"required,gt=0"`
}
