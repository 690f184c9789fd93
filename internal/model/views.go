package model

// Dashboard содержит счётчики главной страницы.
type Dashboard struct {
	Agencies  int64 `json:"agencies"`
	Monuments int64 `json:"monuments"`
	Pending   int64 `json:"pending"`
	Users     int64 `json:"users"`
}

// MonumentDetails: карточка памятника вместе с визитом текущего пользователя.
type MonumentDetails struct {
	Monument  *Monument `json:"monument"`
	Agency    *Agency   `json:"agency"`
	State     *State    `json:"state"`
	Visit     *Visit    `json:"visit,omitempty"`
	IsVisited bool      `json:"is_visited"`
}
