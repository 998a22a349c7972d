package domain

// Session identifies the authenticated caller. Services receive it explicitly
// instead of reading ambient state from the request context.
type Session struct {
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
