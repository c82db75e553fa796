package entity

// TriviaResponse records a submitted answer. At most one exists per
// (user, question) pair, guarded by a pre-write existence check rather than a
// store-level uniqueness constraint. Responses are never updated or deleted.
type TriviaResponse struct {
	ID          string `mapstructure:"-"`
	TriviaID    string `mapstructure:"trivia"`
	UserID      string `mapstructure:"user"`
	Answer      string `mapstructure:"answer"`
	AnswerIndex int    `mapstructure:"answerIndex"`
}
