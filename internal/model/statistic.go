package model

type GetClientStatsRequest struct {
	ClientIDs []string `json:"clientIds"`
}

type ClientStats struct {
	ClientID          string `json:"clientId"`
	Events            int    `json:"events"`
	CheckIns          int    `json:"checkIns"`
	PointsDistributed int64  `json:"pointsDistributed"`
	Favorites         int    `json:"favorites"`
}

type GetClientStatsResponse struct {
	Stats []ClientStats `json:"stats"`
}

type GetUserReportRequest struct{}

type UserReportRow struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Points    int64  `json:"points"`
	CheckIns  int    `json:"checkIns"`
	Favorites int    `json:"favorites"`
}

type GetUserReportResponse struct {
	Rows  []UserReportRow `json:"rows"`
	Count int             `json:"count"`
}
