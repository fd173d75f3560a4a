package response

type LoginResponse struct {
	UserID      int64  `json:"userId"`
	AccessToken string `json:"accessToken"`
}
