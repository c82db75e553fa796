package testutil

const (
	Client1 = "client1"
	Client2 = "client2"

	Event1 = "event1"
	Event2 = "event2"
	Event3 = "event3"

	Trivia1 = "trivia1"
	Trivia2 = "trivia2"

	User1 = "user1"
	User2 = "user2"

	Account1 = "account1"
)

// CreateFixtureStore builds an in-memory store seeded with a small dataset
// shared by the domain tests. Events are placed around Manhattan so distance
// ordering is unambiguous.
func CreateFixtureStore() *MockStore {
	store := NewMockStore()

	InsertClients(store)
	InsertEvents(store)
	InsertTrivia(store)
	InsertUsers(store)
	InsertReviews(store)

	return store
}

func InsertClients(store *MockStore) {
	store.Seed("clients", Client1, map[string]any{
		"name": "First Street Coffee",
		"logo": "https://cdn.example.com/first-street.png",
	})
	store.Seed("clients", Client2, map[string]any{
		"name": "Harbor Books",
		"logo": "https://cdn.example.com/harbor-books.png",
	})
}

func InsertEvents(store *MockStore) {
	// Times Square, closest to the default test position.
	store.Seed("events", Event1, map[string]any{
		"name":     "Latte Art Night",
		"date":     "2099-06-01T00:00:00Z",
		"archived": false,
		"hidden":   false,
		"location": []any{40.7580, -73.9855},
		"client":   Client1,
	})

	// Central Park.
	store.Seed("events", Event2, map[string]any{
		"name":     "Poetry Reading",
		"date":     "2099-06-02T00:00:00Z",
		"archived": false,
		"hidden":   false,
		"location": []any{40.7812, -73.9665},
		"client":   Client2,
	})

	// Brooklyn, farthest out.
	store.Seed("events", Event3, map[string]any{
		"name":     "Tasting Tour",
		"date":     "2099-06-03T00:00:00Z",
		"archived": false,
		"hidden":   false,
		"location": []any{40.6782, -73.9442},
		"client":   Client1,
	})
}

func InsertTrivia(store *MockStore) {
	store.Seed("trivia", Trivia1, map[string]any{
		"question":           "What year did we open?",
		"answers":            []any{"2018", "2019", "2020"},
		"correctAnswerIndex": 1,
		"startDate":          "2000-01-01T00:00:00Z",
		"endDate":            "2099-12-31T23:59:59Z",
		"points":             int64(50),
		"skippedUsers":       []any{},
		"client":             Client1,
	})
	store.Seed("trivia", Trivia2, map[string]any{
		"question":           "Which roast is seasonal?",
		"answers":            []any{"Light", "Dark"},
		"correctAnswerIndex": 0,
		"startDate":          "2000-01-01T00:00:00Z",
		"endDate":            "2099-12-31T23:59:59Z",
		"points":             int64(25),
		"skippedUsers":       []any{},
		"client":             Client2,
	})
}

func InsertUsers(store *MockStore) {
	store.Seed("users", User1, map[string]any{
		"accountId": Account1,
		"name":      "Casey",
		"points":    int64(100),
		"blocked":   false,
		"role":      "user",
		"favorites": []any{Client1},
	})
	store.Seed("users", User2, map[string]any{
		"accountId": "",
		"name":      "Robin",
		"points":    int64(0),
		"blocked":   false,
		"role":      "user",
		"favorites": []any{},
	})
}

func InsertReviews(store *MockStore) {
	store.Seed("reviews", "review1", map[string]any{
		"event":        Event1,
		"user":         User1,
		"pointsEarned": int64(10),
	})
	store.Seed("reviews", "review2", map[string]any{
		"event":        Event2,
		"user":         User1,
		"pointsEarned": int64(10),
	})
}
