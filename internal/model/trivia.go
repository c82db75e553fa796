package model

type GetActiveTriviaRequest struct {
	UserID string `json:"userId"`
}

// TriviaQuestion deliberately has no correct-answer field. The correct index
// must never reach a client before answering.
type TriviaQuestion struct {
	ID        string      `json:"id"`
	Question  string      `json:"question"`
	Answers   []string    `json:"answers"`
	Points    int64       `json:"points"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Client    *ClientInfo `json:"client"`
}

type GetActiveTriviaResponse struct {
	Trivia []TriviaQuestion `json:"trivia"`
	Count  int              `json:"count"`
}

type SubmitAnswerRequest struct {
	UserID      string `json:"userId"`
	TriviaID    string `json:"triviaId"`
	AnswerIndex *int   `json:"answerIndex"`
}

type SubmitAnswerResponse struct {
	IsCorrect     bool   `json:"isCorrect"`
	PointsAwarded int64  `json:"pointsAwarded"`
	Message       string `json:"message"`
}

type DismissTriviaRequest struct {
	UserID   string `json:"userId"`
	TriviaID string `json:"triviaId"`
}

type DismissTriviaResponse struct{}
