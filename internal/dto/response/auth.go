package response

type AuthResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}
