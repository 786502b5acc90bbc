package v1

import (
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a plain status message
type InfoResponse struct {
	Message string `json:"message"`
}

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	Username string `json:"username" validate:"required,max=64,username"`
	Email    string `json:"email" validate:"required,max=64,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating SignupRequest struct
func (r *SignupRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// SigninRequest is the body of POST /auth/signin
type SigninRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating SigninRequest struct
func (r *SigninRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// OAuthSigninRequest is the form posted to /auth/token
type OAuthSigninRequest struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required"`
}

// Validate for validating OAuthSigninRequest struct
func (r *OAuthSigninRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// VerificationRequest is the body of POST /auth/account_verification
type VerificationRequest struct {
	Email            string `json:"email" validate:"required,email"`
	VerificationCode string `json:"verification_code" validate:"required,len=6,numeric"`
}

// Validate for validating VerificationRequest struct
func (r *VerificationRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// SignoutRequest is the body of POST /auth/signout
type SignoutRequest struct {
	ID uint `json:"id" validate:"required"`
}

// Validate for validating SignoutRequest struct
func (r *SignoutRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// OTPRequest is the body of the OTP verify and validate endpoints
type OTPRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTPToken string `json:"otp_token" validate:"required,len=6,numeric"`
}

// Validate for validating OTPRequest struct
func (r *OTPRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// DisableOTPRequest is the body of DELETE /auth/otp
type DisableOTPRequest struct {
	OTPToken string `json:"otp_token" validate:"required,len=6,numeric"`
}

// Validate for validating DisableOTPRequest struct
func (r *DisableOTPRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AccountUpdateRequest is the body of PUT /accounts/update/:id
type AccountUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// ToDomain converts the request into an AccountUpdate
func (r *AccountUpdateRequest) ToDomain() *accounts.AccountUpdate {
	return &accounts.AccountUpdate{Username: r.Username, Email: r.Email, Password: r.Password}
}

// ProfileUpdateRequest is the body of PUT /profiles/:id
type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Win       *int    `json:"win"`
	Loss      *int    `json:"loss"`
	MMR       *int    `json:"mmr"`
}

// ToDomain converts the request into a ProfileUpdate
func (r *ProfileUpdateRequest) ToDomain() *profiles.ProfileUpdate {
	return &profiles.ProfileUpdate{FirstName: r.FirstName, LastName: r.LastName, Win: r.Win, Loss: r.Loss, MMR: r.MMR}
}

// ListRequest holds the paging and sorting query parameters shared by list endpoints
type ListRequest struct {
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// ProfileListRequest holds the query parameters of GET /profiles
type ProfileListRequest struct {
	ListRequest
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
}

// ToDomain converts the request into a ProfileQuery
func (r *ProfileListRequest) ToDomain() *profiles.ProfileQuery {
	return &profiles.ProfileQuery{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Limit:     r.Limit,
		Offset:    r.Offset,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

// PokemonImageListRequest holds the query parameters of GET /pokemon_images
type PokemonImageListRequest struct {
	ListRequest
	ProfileID uint   `form:"profile_id"`
	Name      string `form:"name"`
}

// ToDomain converts the request into a PokemonImageQuery
func (r *PokemonImageListRequest) ToDomain() *pokemonimages.PokemonImageQuery {
	return &pokemonimages.PokemonImageQuery{
		ProfileID: r.ProfileID,
		Name:      r.Name,
		Limit:     r.Limit,
		Offset:    r.Offset,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

// PokemonImageCreateRequest is the JSON body or multipart form of POST /pokemon_images
type PokemonImageCreateRequest struct {
	Name     string `json:"name" form:"name"`
	Nickname string `json:"nickname" form:"nickname"`
}

// NicknameUpdateRequest is the body of PUT /pokemon_images/:id
type NicknameUpdateRequest struct {
	Nickname string `json:"nickname" validate:"required,min=1,max=64"`
}

// Validate for validating NicknameUpdateRequest struct
func (r *NicknameUpdateRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// PredictionRequest is the body of PUT /pokemon_images/:id/predictions
type PredictionRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=correct wrong"`
}

// Validate for validating PredictionRequest struct
func (r *PredictionRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AccountResponse is the public view of an account
type AccountResponse struct {
	ID            uint       `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	IsVerified    bool       `json:"is_verified"`
	IsLoggedIn    bool       `json:"is_logged_in"`
	IsAdmin       bool       `json:"is_admin"`
	IsOTPEnabled  bool       `json:"is_otp_enabled"`
	IsOTPVerified bool       `json:"is_otp_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// NewAccountResponse maps an account without its secrets
func NewAccountResponse(a *accounts.Account) AccountResponse {
	resp := AccountResponse{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		IsVerified:    a.IsVerified,
		IsLoggedIn:    a.IsLoggedIn,
		IsAdmin:       a.IsAdmin,
		IsOTPEnabled:  a.IsOTPEnabled,
		IsOTPVerified: a.IsOTPVerified,
		CreatedAt:     a.CreatedAt,
	}
	if !a.UpdatedAt.IsZero() {
		updatedAt := a.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// AccountWithTokenResponse is an account together with a freshly issued access token
type AccountWithTokenResponse struct {
	AccountResponse
	Token string `json:"token"`
}

// AuthorizedAccountResponse wraps a session the way signin, OTP validation and account reads return it
type AuthorizedAccountResponse struct {
	AuthorizedAccount AccountWithTokenResponse `json:"authorized_account"`
	IsOTPRequired     bool                     `json:"is_otp_required"`
}

// NewAuthorizedAccountResponse maps a session
func NewAuthorizedAccountResponse(s *accounts.Session) AuthorizedAccountResponse {
	return AuthorizedAccountResponse{
		AuthorizedAccount: AccountWithTokenResponse{
			AccountResponse: NewAccountResponse(s.Account),
			Token:           s.AccessToken,
		},
	}
}

// SignupResponse is returned by POST /auth/signup
type SignupResponse struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	IsProfileCreated bool   `json:"is_profile_created"`
}

// VerificationResponse is returned by POST /auth/account_verification
type VerificationResponse struct {
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

// SignoutResponse is returned by POST /auth/signout
type SignoutResponse struct {
	Username    string `json:"username"`
	IsLoggedOut bool   `json:"is_logged_out"`
}

// TokenResponse is the OAuth2 password flow response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// OTPGenerateResponse carries a new TOTP secret and its provisioning URI
type OTPGenerateResponse struct {
	OTPSecret  string `json:"otp_secret"`
	OTPAuthURL string `json:"otp_auth_url"`
}

// DeletionResponse is returned by DELETE /accounts/delete/:id
type DeletionResponse struct {
	IsDeleted bool `json:"is_deleted"`
}

// ProfileResponse is the public view of a profile
type ProfileResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Photo     string    `json:"photo"`
	Win       int       `json:"win"`
	Loss      int       `json:"loss"`
	MMR       int       `json:"mmr"`
	AccountID uint      `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfileResponse maps a profile
func NewProfileResponse(p *profiles.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Photo:     p.Photo,
		Win:       p.Win,
		Loss:      p.Loss,
		MMR:       p.MMR,
		AccountID: p.AccountID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PokemonImageResponse is the public view of a pokemon image record
type PokemonImageResponse struct {
	ID               string    `json:"id"`
	FileName         string    `json:"file_name"`
	Name             string    `json:"name"`
	Nickname         string    `json:"nickname"`
	ContentType      string    `json:"content_type,omitempty"`
	Size             int64     `json:"size"`
	CorrectPredicted int       `json:"correct_predicted"`
	WrongPredicted   int       `json:"wrong_predicted"`
	Win              int       `json:"win"`
	Loss             int       `json:"loss"`
	ProfileID        uint      `json:"profile_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewPokemonImageResponse maps a pokemon image
func NewPokemonImageResponse(p *pokemonimages.PokemonImage) PokemonImageResponse {
	return PokemonImageResponse{
		ID:               p.ID,
		FileName:         p.FileName,
		Name:             p.Name,
		Nickname:         p.Nickname,
		ContentType:      p.ContentType,
		Size:             p.Size,
		CorrectPredicted: p.CorrectPredicted,
		WrongPredicted:   p.WrongPredicted,
		Win:              p.Win,
		Loss:             p.Loss,
		ProfileID:        p.ProfileID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
