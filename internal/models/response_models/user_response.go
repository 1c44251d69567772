package response_models

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
