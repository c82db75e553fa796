package model

// GetEventsByLocationRequest uses pointers for every field the handler
// validates, so an absent value is distinguishable from a zero one.
type GetEventsByLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Page      *int     `json:"page"`
	PageSize  *int     `json:"pageSize"`
}

type ClientInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type Event struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Date      string      `json:"date"`
	StartTime string      `json:"startTime,omitempty"`
	EndTime   string      `json:"endTime,omitempty"`
	Address   string      `json:"address,omitempty"`
	City      string      `json:"city,omitempty"`
	State     string      `json:"state,omitempty"`
	Zip       string      `json:"zip,omitempty"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Distance  float64     `json:"distance"`
	Client    *ClientInfo `json:"client"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type GetEventsByLocationResponse struct {
	Events     []Event    `json:"events"`
	Pagination Pagination `json:"pagination"`
}
